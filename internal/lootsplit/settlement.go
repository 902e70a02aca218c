package lootsplit

import "sort"

// dust is the largest leftover, per party member, that is not worth a
// transfer. It absorbs the remainder of the integer division.
const dust = 1

type owed struct {
	name   string
	amount int64
}

// CalculateSplit works out who pays whom so that every player ends up with
// the party's individual balance (total balance divided by the number of
// players, truncated toward zero).
//
// Players above the individual balance pay, players below it receive. Both
// sides are matched greedily from the largest amount down, which keeps the
// number of transfers below the number of players.
func CalculateSplit(session SessionData) SplitResult {
	n := int64(len(session.Players))
	if n == 0 {
		return SplitResult{Session: session, IndividualBalance: 0, Transfers: []Transfer{}}
	}

	individual := session.TotalBalance / n

	var payers, receivers []owed
	for _, p := range session.Players {
		diff := p.Balance - individual
		if diff > 0 {
			payers = append(payers, owed{name: p.Name, amount: diff})
		} else if diff < 0 {
			receivers = append(receivers, owed{name: p.Name, amount: -diff})
		}
	}
	sort.SliceStable(payers, func(i, j int) bool { return payers[i].amount > payers[j].amount })
	sort.SliceStable(receivers, func(i, j int) bool { return receivers[i].amount > receivers[j].amount })

	transfers := []Transfer{}
	i, j := 0, 0
	for i < len(payers) && j < len(receivers) {
		p := &payers[i]
		r := &receivers[j]

		amt := min(p.amount, r.amount)
		if amt > 0 {
			transfers = append(transfers, Transfer{From: p.name, To: r.name, Amount: amt})
		}
		p.amount -= amt
		r.amount -= amt

		if p.amount <= dust {
			i++
		}
		if r.amount <= dust {
			j++
		}
	}

	return SplitResult{
		Session:           session,
		IndividualBalance: individual,
		Transfers:         transfers,
	}
}
