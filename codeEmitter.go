package main

// Replacement is the statement list taking the place of one import declaration.
type Replacement struct {
	Before  []Statement // aggregate declaration
	Replace []Statement // per-file imports
	After   []Statement // property copies, then bindings
}

// EmitStatements turns a plan into statements. File order is kept in every section.
func EmitStatements(plan RewritePlan) Replacement {
	var r Replacement
	hasAggregate := plan.Aggregate != ""

	r.Replace = make([]Statement, 0, len(plan.Files))
	for _, file := range plan.Files {
		imp := ImportDeclarationStatement{Source: file.Specifier}
		if hasAggregate {
			imp.Namespace = file.Ref
		}
		r.Replace = append(r.Replace, imp)
	}

	if !hasAggregate {
		return r
	}

	r.Before = []Statement{VariableDeclaration{Kind: "const", Name: plan.Aggregate, Init: ObjectExpression{}}}

	r.After = make([]Statement, 0, len(plan.Files)+len(plan.Bindings))
	for _, file := range plan.Files {
		if plan.CopyExports {
			r.After = append(r.After, ForInCopy{Source: file.Ref, Target: plan.Aggregate, DefaultName: file.Name})
			continue
		}
		r.After = append(r.After, ExpressionStatement{Expr: AssignmentExpression{
			Left:  MemberExpression{Object: plan.Aggregate, Property: file.Name},
			Right: file.Ref,
		}})
	}

	for _, binding := range plan.Bindings {
		var value Expression = plan.Aggregate
		if binding.Property != "" {
			value = MemberExpression{Object: plan.Aggregate, Property: binding.Property}
		}
		r.After = append(r.After, VariableDeclaration{Kind: "const", Name: binding.Local, Init: value})
	}

	return r
}

// Splice hands the replacement to the host. InsertAfter stacks in front of earlier
// inserts, so After is fed back to front.
func (r Replacement) Splice(path Splicer) {
	if len(r.Before) > 0 {
		path.InsertBefore(r.Before...)
	}
	for i := len(r.After) - 1; i >= 0; i-- {
		path.InsertAfter(r.After[i])
	}
	path.ReplaceWithMultiple(r.Replace)
}

// Statements flattens the replacement in final order.
func (r Replacement) Statements() []Statement {
	out := make([]Statement, 0, len(r.Before)+len(r.Replace)+len(r.After))
	out = append(out, r.Before...)
	out = append(out, r.Replace...)
	return append(out, r.After...)
}
