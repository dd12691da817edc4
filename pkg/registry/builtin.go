package registry

import (
	"fmt"

	"github.com/automatalab/automata/pkg/domain"
)

// Builtin returns a registry seeded with the two stock machines: "ab"
// over the alphabet {a, b} and "01" over {0, 1}. Both tables are hand
// authored; gaps (e.g. state 7 on 'a' in "ab") are intentional partial
// entries, reported per-run as no-transition results.
func Builtin() *Registry {
	r := New()
	for _, def := range []*domain.Definition{machineAB(), machine01()} {
		if err := r.Register(def); err != nil {
			// The stock tables are covered by tests; a failure here is a
			// programming error.
			panic(fmt.Sprintf("builtin machine %s: %v", def.Name, err))
		}
	}
	return r
}

func rule(from, on, to string) domain.Rule {
	return domain.Rule{From: from, On: on, To: to}
}

func machineAB() *domain.Definition {
	return &domain.Definition{
		Name:    "ab",
		Label:   "a and b",
		Pattern: "(aa+bb) (aba+bab+bbb) (a+b)* (aa+bb) (aa+bb)* (ab* ab* a) (ab* ab* a)* (bbb+aaa) (a+b)*",
		Notes: `# Language over {a, b}

**Valid strings:**
- aabbbabaaabbbbaaaaaaaabbbab
- bbababbbaaabbabbaabbabbabbbab
- aabababababbbbbaaaababaaaaba
- bbababbbbababaabababbbb

**Invalid strings:**
- bbababababbabbabbabbaabbabbababa
- aababbbbababaabbaaabbabbaabbabbabbabab
- bbbbbabab
- aababababbbababbbbb
`,
		States: []string{
			"0", "1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11",
			"12", "13", "14", "15", "16", "17", "18", "19", "20", "21",
			"22", "T1", "T2",
		},
		Alphabet: []string{"a", "b"},
		Start:    "0",
		Accept:   []string{"19", "22"},
		// The ordered list reproduces the authored table as-is, including
		// its three duplicate keys ((1,b), (2,a), (16,b)). The later rule
		// wins and Compile reports each conflict as a warning.
		Rules: []domain.Rule{
			rule("0", "b", "1"),
			rule("0", "a", "2"),
			rule("1", "b", "2"),
			rule("1", "a", "T1"),
			rule("2", "b", "T1"),
			rule("T1", "a", "T1"),
			rule("T1", "b", "T1"),
			rule("2", "a", "1"),
			rule("1", "b", "3"),
			rule("2", "a", "3"),
			rule("3", "b", "5"),
			rule("3", "a", "4"),
			rule("4", "b", "6"),
			rule("4", "a", "T2"),
			rule("T2", "a", "T2"),
			rule("T2", "b", "T2"),
			rule("5", "a", "7"),
			rule("5", "b", "8"),
			rule("6", "a", "9"),
			rule("6", "b", "T2"),
			rule("7", "b", "9"),
			rule("8", "b", "9"),
			rule("8", "a", "T2"),
			rule("9", "a", "10"),
			rule("9", "b", "11"),
			rule("10", "a", "12"),
			rule("10", "b", "11"),
			rule("11", "b", "12"),
			rule("11", "a", "10"),
			rule("12", "b", "13"),
			rule("13", "b", "12"),
			rule("13", "a", "10"),
			rule("12", "a", "14"),
			rule("14", "b", "14"),
			rule("14", "a", "15"),
			rule("15", "b", "15"),
			rule("15", "a", "16"),
			rule("16", "b", "18"),
			rule("16", "a", "17"),
			rule("17", "a", "18"),
			rule("17", "b", "16"),
			rule("18", "a", "19"),
			rule("18", "b", "16"),
			rule("16", "b", "20"),
			rule("20", "b", "21"),
			rule("20", "a", "16"),
			rule("21", "b", "22"),
			rule("21", "a", "16"),
			rule("22", "b", "22"),
			rule("22", "a", "22"),
			rule("19", "a", "19"),
			rule("19", "b", "19"),
		},
	}
}

func machine01() *domain.Definition {
	return &domain.Definition{
		Name:    "01",
		Label:   "0 and 1",
		Pattern: "(1* 01* 01*) (11+00) (10+01)* (1+0) (11+00) (1+0+11+00+101+111+000) (11+00)* (10* 10* 1) (11+00)*",
		Notes: `# Language over {0, 1}

**Valid strings:**
- 0011000000111
- 101011101011100100100111
- 0000010000000011100
- 00111011111111111111

**Invalid strings:**
- 000010000111
- 0011011101111
- 001101100101111
- 0010000010111
`,
		States: []string{
			"0", "1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11",
			"12", "13", "14", "15", "16", "17", "18", "19", "20", "21",
			"22", "23", "24", "25", "26", "27", "28", "29", "30", "31",
			"32", "33", "34", "T1", "T2", "T3",
		},
		Alphabet: []string{"0", "1"},
		Start:    "0",
		Accept:   []string{"30", "31", "32"},
		Rules: []domain.Rule{
			rule("0", "1", "0"),
			rule("0", "0", "1"),
			rule("1", "1", "1"),
			rule("1", "0", "2"),
			rule("2", "1", "3"),
			rule("2", "0", "4"),
			rule("3", "1", "5"),
			rule("3", "0", "T1"),
			rule("4", "1", "T1"),
			rule("4", "0", "5"),
			rule("T1", "1", "T1"),
			rule("T1", "0", "T1"),
			rule("5", "1", "6"),
			rule("5", "0", "9"),
			rule("6", "0", "7"),
			rule("6", "1", "12"),
			rule("7", "0", "5"),
			rule("7", "1", "10"),
			rule("9", "1", "8"),
			rule("8", "1", "5"),
			rule("8", "0", "11"),
			rule("11", "1", "9"),
			rule("9", "0", "13"),
			rule("12", "1", "14"),
			rule("14", "1", "18"),
			rule("14", "0", "T1"),
			rule("12", "0", "15"),
			rule("15", "0", "19"),
			rule("15", "1", "T1"),
			rule("13", "1", "16"),
			rule("16", "1", "20"),
			rule("16", "0", "T2"),
			rule("13", "0", "17"),
			rule("17", "0", "21"),
			rule("17", "1", "T2"),
			rule("T2", "1", "T2"),
			rule("T2", "0", "T2"),
			rule("10", "1", "18"),
			rule("10", "0", "6"),
			rule("11", "0", "21"),
			rule("18", "1", "22"),
			rule("18", "0", "23"),
			rule("19", "0", "23"),
			rule("19", "1", "22"),
			rule("20", "0", "23"),
			rule("20", "1", "22"),
			rule("21", "0", "23"),
			rule("21", "1", "22"),
			rule("22", "0", "25"),
			rule("22", "1", "24"),
			rule("24", "0", "24"),
			rule("24", "1", "28"),
			rule("25", "1", "29"),
			rule("25", "0", "T2"),
			rule("29", "1", "30"),
			rule("28", "0", "28"),
			rule("28", "1", "30"),
			rule("23", "1", "30"),
			rule("23", "0", "26"),
			rule("26", "1", "30"),
			rule("26", "0", "27"),
			rule("27", "0", "21"),
			rule("27", "1", "30"),
			rule("30", "1", "31"),
			rule("30", "0", "30"),
			rule("31", "1", "32"),
			rule("31", "0", "31"),
			rule("32", "1", "33"),
			rule("32", "0", "34"),
			rule("33", "1", "32"),
			rule("33", "0", "T3"),
			rule("34", "0", "32"),
			rule("34", "1", "T3"),
			rule("T3", "1", "T3"),
			rule("T3", "0", "T3"),
		},
	}
}
