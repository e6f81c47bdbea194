// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package hypertrie

// Operand is one participant of a Join: either a Hypertrie still to be
// resolved, or a bool already settled by an earlier join step.
// Positions names which of the Hypertrie's own positions are bound to
// the join variable this Join call resolves; an empty Positions means
// the operand does not participate in this step and passes through
// unchanged.
type Operand struct {
	Trie      *Hypertrie
	Bool      bool
	IsBool    bool
	Positions []int
}

// JoinMatch is one emitted result: the key template with this step's
// hole filled in, and the residual of every input operand (in the
// same order operands were given to Join).
type JoinMatch struct {
	Template  []KeyPart
	Residuals []Operand
}

// JoinIterator is a pull-based cursor over a Join's matches, emitted
// in strictly ascending order of the join variable's key part. All
// state lives in the iterator; the host may stop pulling at any time.
type JoinIterator struct {
	operands []Operand
	template []KeyPart
	joinPos  int

	views        []*DiagonalView
	viewIndexFor []int // per operand index, its slot in views, or -1

	leader  int
	started bool
	done    bool
}

// Join constructs a leapfrog intersection over operands for the given
// join variable, per §4.6:
//
//  1. operands with an empty Positions list are dropped from the
//     intersection (they don't participate in this variable) and are
//     carried through to every match's residuals unchanged.
//  2. every remaining Hypertrie operand gets a DiagonalView over its
//     Positions.
//  3. minimizeRange shrinks every view's scan window to the
//     intersection of all views' [min, max].
//  4. the view with the smallest Size() after minimization becomes
//     the leader.
//
// template is the in-progress key assignment for the overall
// conjunctive query; joinPos is the index this Join call resolves.
// At least one operand must participate (an empty Positions list on
// every operand is a malformed request and panics, matching the
// precondition-violation policy of §7).
func Join(operands []Operand, template []KeyPart, joinPos int) (*JoinIterator, error) {
	j := &JoinIterator{
		operands:     operands,
		template:     template,
		joinPos:      joinPos,
		viewIndexFor: make([]int, len(operands)),
	}
	for i := range j.viewIndexFor {
		j.viewIndexFor[i] = -1
	}

	for i, op := range operands {
		if op.IsBool || len(op.Positions) == 0 {
			continue
		}
		dv, err := op.Trie.Diagonal(op.Positions)
		if err != nil {
			return nil, err
		}
		j.viewIndexFor[i] = len(j.views)
		j.views = append(j.views, dv)
	}
	if len(j.views) == 0 {
		panic("hypertrie: join requires at least one participating operand")
	}

	lo, hi, ok := minimizeRange(j.views)
	if !ok {
		j.done = true
		return j, nil
	}
	for _, v := range j.views {
		v.shrinkRange(lo, hi)
		v.Init()
	}

	j.leader = 0
	for i, v := range j.views {
		if v.Size() < j.views[j.leader].Size() {
			j.leader = i
		}
	}
	return j, nil
}

// minimizeRange computes [max(v.min()), min(v.max())] across views.
// ok is false if any view is already empty or the resulting range is
// inverted — either way the join has no matches.
func minimizeRange(views []*DiagonalView) (lo, hi KeyPart, ok bool) {
	first := true
	for _, v := range views {
		vlo, lok := v.Min()
		vhi, hok := v.Max()
		if !lok || !hok {
			return 0, 0, false
		}
		if first || vlo > lo {
			lo = vlo
		}
		if first || vhi < hi {
			hi = vhi
		}
		first = false
	}
	return lo, hi, lo <= hi
}

// Next advances to and returns the next match, or (nil, false) once
// the join is exhausted.
func (j *JoinIterator) Next() (*JoinMatch, bool) {
	if j.done {
		return nil, false
	}
	if j.started {
		j.views[j.leader].Advance()
	}
	j.started = true

	if !j.seekMatch() {
		j.done = true
		return nil, false
	}

	current := j.views[j.leader].CurrentKeyPart()
	out := &JoinMatch{
		Template:  append([]KeyPart(nil), j.template...),
		Residuals: make([]Operand, len(j.operands)),
	}
	out.Template[j.joinPos] = current

	for i, op := range j.operands {
		vi := j.viewIndexFor[i]
		if vi < 0 {
			out.Residuals[i] = op
			continue
		}
		v := j.views[vi]
		if v.full {
			out.Residuals[i] = Operand{Bool: v.Contains(current), IsBool: true}
		} else {
			out.Residuals[i] = Operand{Trie: v.CurrentValue()}
		}
	}
	return out, true
}

// seekMatch runs the leapfrog loop of §4.6 starting from the leader's
// current position: check every follower against the leader's key
// part, and whenever a follower disagrees, pull the leader forward to
// that follower's own next valid value and restart the check from the
// first follower (not just resume where it left off — the leader's
// jump can invalidate an already-confirmed follower).
func (j *JoinIterator) seekMatch() bool {
	lv := j.views[j.leader]
	if lv.Done() {
		return false
	}
	current := lv.CurrentKeyPart()

	for {
		allMatch := true
		for i, v := range j.views {
			if i == j.leader {
				continue
			}
			if v.ContainsAndUpdateMin(current) {
				continue
			}
			if v.Done() {
				return false
			}
			lv.SetMinGeq(v.CurrentKeyPart())
			if lv.Done() {
				return false
			}
			current = lv.CurrentKeyPart()
			allMatch = false
			break
		}
		if allMatch {
			return true
		}
	}
}
