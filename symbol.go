package qrsymbol

// Symbol is the result of encoding: the module matrix plus the version and
// format parameters written into it. The caller owns the Symbol after
// return; the encoder keeps no state.
type Symbol struct {
	Matrix  *Matrix
	Version int
	Level   Level
	Mask    int
}
