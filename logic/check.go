package logic

// ModelCheck reports whether kb entails query: query is true in every model
// in which kb is true. Models range over the sorted union of both sentences'
// symbols.
//
// Steps:
//  1. Collect the symbols of kb and query.
//  2. Assign each symbol true then false, depth-first.
//  3. At a complete model, skip it if kb is false; otherwise query must hold.
//
// Complexity: O(2ⁿ · (|kb| + |query|)) time, O(n) extra space.
func ModelCheck(kb, query Sentence) (bool, error) {
	symbols := union(kb, query)
	return checkAll(kb, query, symbols, make(Model, len(symbols)))
}

func checkAll(kb, query Sentence, rest []string, m Model) (bool, error) {
	if len(rest) == 0 {
		holds, err := kb.Evaluate(m)
		if err != nil || !holds {
			return true, err
		}
		return query.Evaluate(m)
	}

	name := rest[0]
	for _, v := range []bool{true, false} {
		m[name] = v
		ok, err := checkAll(kb, query, rest[1:], m)
		if err != nil || !ok {
			delete(m, name)
			return false, err
		}
	}
	delete(m, name)
	return true, nil
}
