// Copyright 2025 Nexusdev Ltd.
// SPDX-License-Identifier: AGPL-3.0

package openfga

import "fmt"

type Tuple struct {
	User     string
	Relation string
	Object   string
}

func (t *Tuple) String() string {
	return fmt.Sprintf("%s %s %s", t.User, t.Relation, t.Object)
}

func NewTuple(user, relation, object string) *Tuple {
	t := new(Tuple)

	t.User = user
	t.Relation = relation
	t.Object = object

	return t
}

// TupleWithContext is a check target bundled with the contextual tuples to
// evaluate it against.
type TupleWithContext struct {
	Tuple

	ContextualTuples []Tuple
}

func NewTupleWithContext(user, relation, object string, contextualTuples ...Tuple) *TupleWithContext {
	t := new(TupleWithContext)

	t.User = user
	t.Relation = relation
	t.Object = object
	t.ContextualTuples = contextualTuples

	return t
}
