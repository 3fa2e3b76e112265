// SPDX-License-Identifier: MIT

package dim

// Predeclared markers for the sizes used most often.
type (
	D0 struct{}
	D1 struct{}
	D2 struct{}
	D3 struct{}
	D4 struct{}
	D5 struct{}
	D6 struct{}
	D7 struct{}
	D8 struct{}
	D9 struct{}
	D10 struct{}
	D11 struct{}
	D12 struct{}
	D13 struct{}
	D14 struct{}
	D15 struct{}
	D16 struct{}
)

func (D0) Size() int { return 0 }
func (D1) Size() int { return 1 }
func (D2) Size() int { return 2 }
func (D3) Size() int { return 3 }
func (D4) Size() int { return 4 }
func (D5) Size() int { return 5 }
func (D6) Size() int { return 6 }
func (D7) Size() int { return 7 }
func (D8) Size() int { return 8 }
func (D9) Size() int { return 9 }
func (D10) Size() int { return 10 }
func (D11) Size() int { return 11 }
func (D12) Size() int { return 12 }
func (D13) Size() int { return 13 }
func (D14) Size() int { return 14 }
func (D15) Size() int { return 15 }
func (D16) Size() int { return 16 }
