package taxonomy

// Kind says whether a transaction brings money in or takes it out.
// The zero value is not a valid kind.
type Kind int8

const (
	KindIncome Kind = iota + 1
	KindExpense
)

var kinds = []Kind{KindIncome, KindExpense}

// locale spellings accepted in addition to the canonical names
var kindAliases = map[string]Kind{
	"Receita": KindIncome,
	"Despesa": KindExpense,
}

var kindIndex = buildIndex(kinds, kindAliases)

// Kinds returns every kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, len(kinds))
	copy(out, kinds)
	return out
}

// ParseKind resolves text to a Kind. The second result is false when nothing
// matches.
func ParseKind(text string) (Kind, bool) {
	k, ok := kindIndex[lookupKey(text)]
	return k, ok
}

func (k Kind) String() string {
	switch k {
	case KindIncome:
		return "Income"
	case KindExpense:
		return "Expense"
	}
	return ""
}

// Valid reports whether k is a member of the closed set.
func (k Kind) Valid() bool {
	switch k {
	case KindIncome, KindExpense:
		return true
	}
	return false
}
