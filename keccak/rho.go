package keccak

// rhoOffsets[x+5*y] is the rotation applied to lane (x, y), derived by
// walking (x, y) <- (y, 2x+3y) from (1, 0).
var rhoOffsets [25]int

func init() {
	x, y := 1, 0
	for t := 0; t < 24; t++ {
		rhoOffsets[x+5*y] = (t + 1) * (t + 2) / 2 % LaneSize
		x, y = y, (2*x+3*y)%5
	}
}

// Rho rotates every lane along z. It only rewires references and emits no gate:
//
//	A'[x, y, z] = A[x, y, (z - offset(x, y)) mod 64]
func Rho(s *State) {
	s.step("rho", func() {
		for x := 0; x < 5; x++ {
			for y := 0; y < 5; y++ {
				off := rhoOffsets[x+5*y]
				for z := 0; z < LaneSize; z++ {
					s.SetOut(x, y, z, s.In(x, y, (z-off+LaneSize)%LaneSize))
				}
			}
		}
	})
}
