package keccak

// Pi permutes the lanes. It only rewires references and emits no gate:
//
//	A'[x, y, z] = A[(x + 3y) mod 5, x, z]
func Pi(s *State) {
	s.step("pi", func() {
		for x := 0; x < 5; x++ {
			for y := 0; y < 5; y++ {
				for z := 0; z < LaneSize; z++ {
					s.SetOut(x, y, z, s.In((x+3*y)%5, x, z))
				}
			}
		}
	})
}
