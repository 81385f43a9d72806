// Package mathsolver extracts and evaluates simple arithmetic found in
// chat messages. Results are used only as prompt hints, never sent to
// the user directly.
package mathsolver

import (
	"fmt"
	"strconv"
	"strings"
)

// Evaluator solves plain arithmetic expressions (+ - * / and parens).
type Evaluator struct{}

func NewEvaluator() *Evaluator { return &Evaluator{} }

// Solve looks for an arithmetic expression inside text and evaluates it.
// Returns "expr = result" and true, or "" and false when the text holds
// nothing solvable.
func (e *Evaluator) Solve(text string) (string, bool) {
	expr := extractExpression(text)
	if expr == "" {
		return "", false
	}
	val, err := evaluate(expr)
	if err != nil {
		return "", false
	}
	return fmt.Sprintf("%s = %s", expr, formatNumber(val)), true
}

// extractExpression returns the longest run of expression characters
// that contains at least one digit and one operator.
func extractExpression(text string) string {
	const exprChars = "0123456789+-*/(). "
	var best string
	var cur strings.Builder
	flush := func() {
		s := strings.TrimSpace(cur.String())
		cur.Reset()
		if isExpression(s) && len(s) > len(best) {
			best = s
		}
	}
	for _, r := range text {
		if strings.ContainsRune(exprChars, r) {
			cur.WriteRune(r)
			continue
		}
		flush()
	}
	flush()
	return best
}

func isExpression(s string) bool {
	var hasDigit, hasOp bool
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			hasDigit = true
		case r == '+' || r == '-' || r == '*' || r == '/':
			hasOp = true
		}
	}
	return hasDigit && hasOp
}

type token struct {
	num  float64
	op   rune // 0 for numbers
}

func tokenize(expr string) ([]token, error) {
	var out []token
	i := 0
	for i < len(expr) {
		c := expr[i]
		switch {
		case c == ' ':
			i++
		case strings.ContainsRune("+-*/()", rune(c)):
			// unary minus: fold into the following number
			if c == '-' && (len(out) == 0 || out[len(out)-1].op != 0 && out[len(out)-1].op != ')') {
				j := i + 1
				for j < len(expr) && (expr[j] >= '0' && expr[j] <= '9' || expr[j] == '.') {
					j++
				}
				if j == i+1 {
					return nil, fmt.Errorf("dangling minus")
				}
				n, err := strconv.ParseFloat(expr[i:j], 64)
				if err != nil {
					return nil, err
				}
				out = append(out, token{num: n})
				i = j
				continue
			}
			out = append(out, token{op: rune(c)})
			i++
		case c >= '0' && c <= '9' || c == '.':
			j := i
			for j < len(expr) && (expr[j] >= '0' && expr[j] <= '9' || expr[j] == '.') {
				j++
			}
			n, err := strconv.ParseFloat(expr[i:j], 64)
			if err != nil {
				return nil, err
			}
			out = append(out, token{num: n})
			i = j
		default:
			return nil, fmt.Errorf("unexpected char %q", c)
		}
	}
	return out, nil
}

func precedence(op rune) int {
	switch op {
	case '+', '-':
		return 1
	case '*', '/':
		return 2
	}
	return 0
}

// evaluate runs a shunting-yard pass then folds the RPN output.
func evaluate(expr string) (float64, error) {
	tokens, err := tokenize(expr)
	if err != nil {
		return 0, err
	}

	var output []token
	var ops []rune
	for _, t := range tokens {
		switch {
		case t.op == 0:
			output = append(output, t)
		case t.op == '(':
			ops = append(ops, t.op)
		case t.op == ')':
			for len(ops) > 0 && ops[len(ops)-1] != '(' {
				output = append(output, token{op: ops[len(ops)-1]})
				ops = ops[:len(ops)-1]
			}
			if len(ops) == 0 {
				return 0, fmt.Errorf("unbalanced parens")
			}
			ops = ops[:len(ops)-1]
		default:
			for len(ops) > 0 && precedence(ops[len(ops)-1]) >= precedence(t.op) {
				output = append(output, token{op: ops[len(ops)-1]})
				ops = ops[:len(ops)-1]
			}
			ops = append(ops, t.op)
		}
	}
	for len(ops) > 0 {
		if ops[len(ops)-1] == '(' {
			return 0, fmt.Errorf("unbalanced parens")
		}
		output = append(output, token{op: ops[len(ops)-1]})
		ops = ops[:len(ops)-1]
	}

	var stack []float64
	for _, t := range output {
		if t.op == 0 {
			stack = append(stack, t.num)
			continue
		}
		if len(stack) < 2 {
			return 0, fmt.Errorf("malformed expression")
		}
		b := stack[len(stack)-1]
		a := stack[len(stack)-2]
		stack = stack[:len(stack)-2]
		var v float64
		switch t.op {
		case '+':
			v = a + b
		case '-':
			v = a - b
		case '*':
			v = a * b
		case '/':
			if b == 0 {
				return 0, fmt.Errorf("division by zero")
			}
			v = a / b
		}
		stack = append(stack, v)
	}
	if len(stack) != 1 {
		return 0, fmt.Errorf("malformed expression")
	}
	return stack[0], nil
}

func formatNumber(v float64) string {
	s := strconv.FormatFloat(v, 'f', 4, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	if s == "" || s == "-" {
		return "0"
	}
	return s
}
