package bnf

// Rule is the whitespace-loose named production of spec.md §4.6,
// grounded on original_source/bnflite.h's `class Rule`. Unlike a
// Lexeme, a Rule leaves inter-child skipping to its descendants (it
// does not touch the scope-depth counter) and may carry a host
// callback that folds its body's child results into one value, bound
// with the package-level generic Bind function in place of
// original_source's function-pointer-typed `Bind<U>`/`operator[]`.
//
// A Rule may only run at whitespace-loose scope (context level >= 1);
// a Rule reached from inside a Lexeme's tight body fails with BadRule,
// matching original_source's `!parser->level` check — spec.md §4.6
// states plainly that "a Rule inside a Lexeme is not supported".
type Rule struct {
	element
	body     Matcher
	callback func([]any) any
}

// NewRule builds a Rule named name wrapping body. A nil body is
// permitted at construction time but fails to match with BadRule.
func NewRule(name string, body Matcher) *Rule {
	r := &Rule{element: newElement(name, false)}
	if body != nil {
		r.element.addChild(&r.element, body)
		r.body = body
	}
	return r
}

// Bind attaches a folding callback to rule: every child contribution
// within rule's body is collected in match order and passed to cb —
// a Result[T] from another bound Rule as-is, or a bare Token/Lexeme/
// unbound-Rule stub widened to a Result[T] with its Data left zero.
// cb's return value becomes rule's own contribution to its parent's
// result frame. A grammar mixes at most one result type T across all
// of its bound Rules, exactly as original_source's single `_Parser<U>`
// template parameter does for an entire analysis.
func Bind[T any](rule *Rule, cb func([]Result[T]) Result[T]) {
	rule.callback = func(children []any) any {
		typed := make([]Result[T], len(children))
		for i, c := range children {
			switch v := c.(type) {
			case Result[T]:
				typed[i] = v
			case stubResult:
				typed[i] = Result[T]{Text: v.Text, Name: v.Name}
			}
		}
		return cb(typed)
	}
}

func (r *Rule) match(ctx *ParseContext) Status {
	if r.body == nil || ctx.level == 0 {
		return Fatal | BadRule
	}
	if _, isAction := r.body.(*Action); isAction {
		return r.body.match(ctx)
	}

	startDepth := len(ctx.spans)
	org := ctx.pos
	ctx.results.push()
	stat := r.body.match(ctx)

	if stat.Ok() && ctx.pos > org {
		children := ctx.results.pop()
		ctx.truncateSpans(startDepth)
		ctx.pushSpan(span{org, ctx.pos})
		if r.callback != nil {
			ctx.results.append(r.callback(children))
		} else {
			ctx.results.append(stubResult{Text: ctx.text[org:ctx.pos], Name: r.name})
		}
		return stat
	}

	ctx.results.pop()
	ctx.truncateSpans(startDepth)
	if !stat.Ok() {
		ctx.pos = org
	}
	return stat
}
