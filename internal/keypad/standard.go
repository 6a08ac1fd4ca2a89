package keypad

// StandardCells is the 18-key pad:
//
//	A B C D E
//	F G H I J
//	K L M N O
//	  1 2 3
//
// A, E, I and O are vowels.
var StandardCells = []Cell{
	{Name: "A", Row: 1, Col: 1, Vowel: true},
	{Name: "B", Row: 1, Col: 2},
	{Name: "C", Row: 1, Col: 3},
	{Name: "D", Row: 1, Col: 4},
	{Name: "E", Row: 1, Col: 5, Vowel: true},
	{Name: "F", Row: 2, Col: 1},
	{Name: "G", Row: 2, Col: 2},
	{Name: "H", Row: 2, Col: 3},
	{Name: "I", Row: 2, Col: 4, Vowel: true},
	{Name: "J", Row: 2, Col: 5},
	{Name: "K", Row: 3, Col: 1},
	{Name: "L", Row: 3, Col: 2},
	{Name: "M", Row: 3, Col: 3},
	{Name: "N", Row: 3, Col: 4},
	{Name: "O", Row: 3, Col: 5, Vowel: true},
	{Name: "1", Row: 4, Col: 2},
	{Name: "2", Row: 4, Col: 3},
	{Name: "3", Row: 4, Col: 4},
}

var standard = mustNew(StandardCells)

// Standard returns the shared 18-key layout.
func Standard() *Layout { return standard }

func mustNew(cells []Cell) *Layout {
	l, err := New(cells)
	if err != nil {
		panic(err)
	}
	return l
}
