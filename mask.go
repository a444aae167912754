package qrsymbol

// MaskFunc reports whether the module at (row, col) is inverted by a data
// mask. Only data modules are ever masked.
type MaskFunc func(row, col int) bool

// DataMasks contains the 8 standard data mask formulas, indexed by mask
// pattern reference.
var DataMasks = [8]MaskFunc{
	func(row, col int) bool { return (row+col)&0x01 == 0 },                 // 000
	func(row, col int) bool { return row&0x01 == 0 },                       // 001
	func(row, col int) bool { return col%3 == 0 },                          // 010
	func(row, col int) bool { return (row+col)%3 == 0 },                    // 011
	func(row, col int) bool { return ((row/2)+(col/3))&0x01 == 0 },         // 100
	func(row, col int) bool { return (row*col)%2+(row*col)%3 == 0 },        // 101
	func(row, col int) bool { return ((row*col)%2+(row*col)%3)&0x01 == 0 }, // 110
	func(row, col int) bool { return ((row+col)%2+(row*col)%3)&0x01 == 0 }, // 111
}
