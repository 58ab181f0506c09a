package strategy

import "errors"

// ErrSearchBudgetExceeded indicates that the matching strategy hit its
// configured augmenting-step budget before reaching a verdict. It is
// distinct from types.ErrInfeasible: the feasibility of the input is
// undecided when this is returned.
var ErrSearchBudgetExceeded = errors.New("matching search budget exceeded")
