package fuzzy

import (
	"fmt"
	"math"
	"strings"
)

// Term identifies one fuzzy set of one variable.
type Term struct {
	Variable string
	Set      string
}

func (t Term) String() string {
	return t.Variable + " is " + t.Set
}

// Memberships holds the fuzzified input: a degree for every antecedent term.
type Memberships map[Term]float64

// Expr is a rule antecedent. Leaves look up a membership degree; And and Or
// combine their operands with min and max.
type Expr interface {
	Eval(m Memberships) float64
	String() string
}

type isExpr Term

func (e isExpr) Eval(m Memberships) float64 {
	return m[Term(e)]
}

func (e isExpr) String() string {
	return Term(e).String()
}

type andExpr []Expr

func (e andExpr) Eval(m Memberships) float64 {
	strength := 1.0
	for _, op := range e {
		strength = math.Min(strength, op.Eval(m))
	}
	return strength
}

func (e andExpr) String() string {
	return join(e, " AND ")
}

type orExpr []Expr

func (e orExpr) Eval(m Memberships) float64 {
	strength := 0.0
	for _, op := range e {
		strength = math.Max(strength, op.Eval(m))
	}
	return strength
}

func (e orExpr) String() string {
	return join(e, " OR ")
}

func join(ops []Expr, sep string) string {
	parts := make([]string, len(ops))
	for i, op := range ops {
		parts[i] = op.String()
	}
	return "(" + strings.Join(parts, sep) + ")"
}

// Is references the membership of variable in set.
func Is(variable, set string) Expr {
	return isExpr{Variable: variable, Set: set}
}

func And(ops ...Expr) Expr {
	return andExpr(ops)
}

func Or(ops ...Expr) Expr {
	return orExpr(ops)
}

// Rule concludes Consequent, a recommendation set, to the degree Antecedent holds.
type Rule struct {
	Antecedent Expr
	Consequent string
}

func (r Rule) String() string {
	return fmt.Sprintf("IF %s THEN %s is %s", r.Antecedent, VarRecommendation, r.Consequent)
}

func volume(set string) Expr     { return Is(VarVolume, set) }
func yards(set string) Expr      { return Is(VarYards, set) }
func receptions(set string) Expr { return Is(VarReceptions, set) }
func td(set string) Expr         { return Is(VarTD, set) }

var ruleBase = []Rule{
	// 1: elite usage, elite yards and multiple scores
	{And(Or(volume("high"), receptions("high")), yards("elite"), td("multiple")), SetStart},
	// 2: no role, or no production
	{Or(And(volume("low"), receptions("low")), And(yards("poor"), td("none"))), SetSit},
	// 3
	{And(volume("medium"), yards("average"), receptions("decent"), td("one")), SetStart},
	// 4
	{And(Or(volume("medium"), receptions("decent")), yards("average"), td("none")), SetFlex},
	// 5
	{And(volume("low"), yards("poor"), receptions("low")), SetSit},
	// 6: busy but inefficient
	{And(volume("high"), yards("poor"), td("none")), SetSit},
	// 7
	{And(yards("elite"), td("multiple")), SetStart},
	// 8
	{And(td("multiple"), Or(volume("medium"), yards("average"))), SetStart},
	// 9
	{And(volume("medium"), yards("average"), td("none")), SetFlex},
	// 10
	{And(Or(volume("high"), receptions("high")), yards("average"), td("none")), SetFlex},
	// 11
	{And(receptions("high"), yards("elite")), SetStart},
	// 12
	{And(volume("medium"), yards("poor"), receptions("low")), SetSit},
	// 13
	{And(volume("high"), yards("poor"), receptions("low"), td("none")), SetSit},
	// 14: low volume, elite ceiling
	{And(volume("low"), yards("elite"), td("multiple")), SetStart},
	// 15: PPR floor
	{And(volume("low"), receptions("high"), yards("average"), td("none")), SetFlex},
	// 16
	{And(volume("medium"), receptions("decent"), yards("average"), td("none")), SetFlex},
	// 17: touchdown masking no production
	{And(volume("low"), yards("poor"), receptions("low"), td("one")), SetSit},
	// 18
	{And(volume("high"), yards("average"), td("one")), SetStart},
	// 19
	{And(volume("medium"), yards("elite"), td("none")), SetFlex},
}

// Rules returns a copy of the rule base.
func Rules() []Rule {
	rules := make([]Rule, len(ruleBase))
	copy(rules, ruleBase)
	return rules
}
