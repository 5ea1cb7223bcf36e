package gmath_test

import (
	"fmt"
	"math"

	"github.com/gogpu/gmath"
)

func ExampleMatrix3_Mul() {
	translate := gmath.Translate(10.0, 0)
	scale := gmath.Scale(2.0, 3.0)

	// a.Mul(b) applies b first.
	p := gmath.V2(1.0, 1.0)
	fmt.Println(translate.Mul(scale).TransformPoint(p))
	fmt.Println(scale.Mul(translate).TransformPoint(p))
	// Output:
	// {12 3}
	// {22 3}
}

func ExampleMatrix3_Rotation() {
	m := gmath.NewMatrix3[float32]()
	m.SetRotation(-math.Pi / 2)
	m.SetTranslation(gmath.V2[float32](3, 4))

	fmt.Printf("%.4f\n", m.Rotation())
	fmt.Println(m.Translation())
	// Output:
	// 4.7124
	// {3 4}
}

func ExampleMatrix3_InverseAffine() {
	m := gmath.NewTransform(
		gmath.WithScale(gmath.V2(2.0, 4.0)),
		gmath.WithTranslation(gmath.V2(1.0, 1.0)),
	)
	inv, ok := m.InverseAffine()
	fmt.Println(ok, inv.TransformPoint(gmath.V2(5.0, 9.0)))

	_, ok = gmath.Scale(0.0, 1.0).InverseAffine()
	fmt.Println(ok)
	// Output:
	// true {2 2}
	// false
}
