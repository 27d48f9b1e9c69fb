package proof_test

import (
	"github.com/brunokim/nd-checker/dsl"
	"github.com/brunokim/nd-checker/proof"
)

var (
	and     = dsl.And
	atom    = dsl.Atom
	bottom  = dsl.Bottom
	dref    = dsl.DRef
	exprs   = dsl.Exprs
	implies = dsl.Implies
	line    = dsl.Line
	not     = dsl.Not
	or      = dsl.Or
	ref     = dsl.Ref
	set     = dsl.Set
	vref    = dsl.VRef
)

var (
	p = atom("p")
	q = atom("q")
	r = atom("r")
)

const (
	assumption   = proof.Assumption
	andElim      = proof.AndElim
	andIntro     = proof.AndIntro
	dne          = proof.DoubleNotElim
	notElim      = proof.NotElim
	notIntro     = proof.NotIntro
	orIntro      = proof.OrIntro
	orElim       = proof.OrElim
	impliesIntro = proof.ImpliesIntro
	impliesElim  = proof.ImpliesElim
	raa          = proof.RAA
)
