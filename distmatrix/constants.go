package distmatrix

// InputMax is the default maximum length, in bytes, of any single CSV field
// (a label or a numeric distance), excluding delimiters. Overridable per
// Parse call via WithInputMax.
const InputMax = 256

// MaxTaxa is the default maximum number of taxa (rows/columns) a
// DistanceMatrix may hold. Overridable per Parse call via WithMaxTaxa.
const MaxTaxa = 4096
