package taxonomy

// rankOrder gives every standard NCBI taxonomic rank an ascending
// ordinal, forma (1) being the finest and superkingdom (28) the
// coarsest. Ranks absent from this table (including "no_rank") look up as
// 0, so AtRanks treats them as finer than every rank listed here.
var rankOrder = map[string]int{
	"forma":            1,
	"varietas":         2,
	"subspecies":       3,
	"species":          4,
	"species subgroup": 5,
	"species group":    6,
	"subgenus":         7,
	"genus":            8,
	"subtribe":         9,
	"tribe":            10,
	"subfamily":        11,
	"family":           12,
	"superfamily":      13,
	"parvorder":        14,
	"infraorder":       15,
	"suborder":         16,
	"order":            17,
	"superorder":       18,
	"infraclass":       19,
	"subclass":         20,
	"class":            21,
	"superclass":       22,
	"subphylum":        23,
	"phylum":           24,
	"superphylum":      25,
	"subkingdom":       26,
	"kingdom":          27,
	"superkingdom":     28,
}
