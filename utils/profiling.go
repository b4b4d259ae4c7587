package utils

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

type SourceInfo struct {
	File string
	Line int
}

// LineProfile counts the gates emitted from one source line.
type LineProfile struct {
	NbAnd int
	NbXor int
}

func (p LineProfile) Cost() int {
	return p.NbAnd*CostOfAndGate + p.NbXor*CostOfXorGate
}

// ProfileBySource groups gates by the source line that emitted them; isAnd[i]
// tells whether gate i is an AND gate.
func ProfileBySource(gateSourceInfo []SourceInfo, isAnd []bool) map[SourceInfo]LineProfile {
	res := make(map[SourceInfo]LineProfile)
	for i := 0; i < len(gateSourceInfo) && i < len(isAnd); i++ {
		p := res[gateSourceInfo[i]]
		if isAnd[i] {
			p.NbAnd++
		} else {
			p.NbXor++
		}
		res[gateSourceInfo[i]] = p
	}
	return res
}

// ShowProfiling prints, file by file, every line that emitted gates with its
// AND and XOR counts, heaviest lines first.
func ShowProfiling(w io.Writer, gateSourceInfo []SourceInfo, isAnd []bool) {
	byFile := make(map[string][]int)
	profile := ProfileBySource(gateSourceInfo, isAnd)
	for si := range profile {
		byFile[si.File] = append(byFile[si.File], si.Line)
	}
	files := make([]string, 0, len(byFile))
	for file := range byFile {
		files = append(files, file)
	}
	sort.Strings(files)

	for _, file := range files {
		lines := byFile[file]
		var total LineProfile
		for _, line := range lines {
			p := profile[SourceInfo{file, line}]
			total.NbAnd += p.NbAnd
			total.NbXor += p.NbXor
		}
		sort.Slice(lines, func(i, j int) bool {
			ci := profile[SourceInfo{file, lines[i]}].Cost()
			cj := profile[SourceInfo{file, lines[j]}].Cost()
			if ci != cj {
				return ci > cj
			}
			return lines[i] < lines[j]
		})

		fmt.Fprintf(w, "File: %s | AND: %d | XOR: %d | Cost: %d\n", file, total.NbAnd, total.NbXor, total.Cost())
		var code []string
		if content, err := os.ReadFile(file); err == nil {
			code = strings.Split(string(content), "\n")
		}
		fmt.Fprintf(w, "%7s | %7s | %7s | Line | Code\n", "AND", "XOR", "Cost")
		for _, line := range lines {
			p := profile[SourceInfo{file, line}]
			src := ""
			if line >= 1 && line <= len(code) {
				src = strings.TrimSpace(code[line-1])
			}
			fmt.Fprintf(w, "%7d | %7d | %7d | %4d | %s\n", p.NbAnd, p.NbXor, p.Cost(), line, src)
		}
		fmt.Fprintln(w)
	}
}
