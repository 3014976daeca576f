package ecs

import "iter"

// Row2..Row9 carry the fixed-size tuple of component pointers a Components2..
// Components9 stream yields, in declared order. Go has no native tuple type;
// these stand in for one, the same way the arity is inflated in any
// statically typed host language without variadic generics over return
// values.
type Row2[A, B any] struct {
	A *A
	B *B
}

type Row3[A, B, C any] struct {
	A *A
	B *B
	C *C
}

type Row4[A, B, C, D any] struct {
	A *A
	B *B
	C *C
	D *D
}

type Row5[A, B, C, D, E any] struct {
	A *A
	B *B
	C *C
	D *D
	E *E
}

type Row6[A, B, C, D, E, F any] struct {
	A *A
	B *B
	C *C
	D *D
	E *E
	F *F
}

type Row7[A, B, C, D, E, F, G any] struct {
	A *A
	B *B
	C *C
	D *D
	E *E
	F *F
	G *G
}

type Row8[A, B, C, D, E, F, G, H any] struct {
	A *A
	B *B
	C *C
	D *D
	E *E
	F *F
	G *G
	H *H
}

type Row9[A, B, C, D, E, F, G, H, I any] struct {
	A *A
	B *B
	C *C
	D *D
	E *E
	F *F
	G *G
	H *H
	I *I
}

// Components1 streams (Entity, *A) for every entity the view matched.
func Components1[A any](v *View) iter.Seq2[Entity, *A] {
	return func(yield func(Entity, *A) bool) {
		for c := range v.Groups() {
			a, ok := Fetch[A](c)
			if !ok {
				continue
			}
			if !yield(c.Entity(), a) {
				return
			}
		}
	}
}

// Components2 streams (Entity, Row2[A,B]) for every entity the view matched
// that currently carries both A and B.
func Components2[A, B any](v *View) iter.Seq2[Entity, Row2[A, B]] {
	return func(yield func(Entity, Row2[A, B]) bool) {
		for c := range v.Groups() {
			a, ok := Fetch[A](c)
			if !ok {
				continue
			}
			b, ok := Fetch[B](c)
			if !ok {
				continue
			}
			if !yield(c.Entity(), Row2[A, B]{A: a, B: b}) {
				return
			}
		}
	}
}

// Components3 streams (Entity, Row3[A,B,C]).
func Components3[A, B, C any](v *View) iter.Seq2[Entity, Row3[A, B, C]] {
	return func(yield func(Entity, Row3[A, B, C]) bool) {
		for c := range v.Groups() {
			a, ok := Fetch[A](c)
			if !ok {
				continue
			}
			b, ok := Fetch[B](c)
			if !ok {
				continue
			}
			cc, ok := Fetch[C](c)
			if !ok {
				continue
			}
			if !yield(c.Entity(), Row3[A, B, C]{A: a, B: b, C: cc}) {
				return
			}
		}
	}
}

// Components4 streams (Entity, Row4[A,B,C,D]).
func Components4[A, B, C, D any](v *View) iter.Seq2[Entity, Row4[A, B, C, D]] {
	return func(yield func(Entity, Row4[A, B, C, D]) bool) {
		for c := range v.Groups() {
			a, ok := Fetch[A](c)
			if !ok {
				continue
			}
			b, ok := Fetch[B](c)
			if !ok {
				continue
			}
			cc, ok := Fetch[C](c)
			if !ok {
				continue
			}
			d, ok := Fetch[D](c)
			if !ok {
				continue
			}
			if !yield(c.Entity(), Row4[A, B, C, D]{A: a, B: b, C: cc, D: d}) {
				return
			}
		}
	}
}

// Components5 streams (Entity, Row5[A,B,C,D,E]).
func Components5[A, B, C, D, E any](v *View) iter.Seq2[Entity, Row5[A, B, C, D, E]] {
	return func(yield func(Entity, Row5[A, B, C, D, E]) bool) {
		for c := range v.Groups() {
			a, ok := Fetch[A](c)
			if !ok {
				continue
			}
			b, ok := Fetch[B](c)
			if !ok {
				continue
			}
			cc, ok := Fetch[C](c)
			if !ok {
				continue
			}
			d, ok := Fetch[D](c)
			if !ok {
				continue
			}
			e, ok := Fetch[E](c)
			if !ok {
				continue
			}
			if !yield(c.Entity(), Row5[A, B, C, D, E]{A: a, B: b, C: cc, D: d, E: e}) {
				return
			}
		}
	}
}

// Components6 streams (Entity, Row6[A,B,C,D,E,F]).
func Components6[A, B, C, D, E, F any](v *View) iter.Seq2[Entity, Row6[A, B, C, D, E, F]] {
	return func(yield func(Entity, Row6[A, B, C, D, E, F]) bool) {
		for c := range v.Groups() {
			a, ok := Fetch[A](c)
			if !ok {
				continue
			}
			b, ok := Fetch[B](c)
			if !ok {
				continue
			}
			cc, ok := Fetch[C](c)
			if !ok {
				continue
			}
			d, ok := Fetch[D](c)
			if !ok {
				continue
			}
			e, ok := Fetch[E](c)
			if !ok {
				continue
			}
			f, ok := Fetch[F](c)
			if !ok {
				continue
			}
			if !yield(c.Entity(), Row6[A, B, C, D, E, F]{A: a, B: b, C: cc, D: d, E: e, F: f}) {
				return
			}
		}
	}
}

// Components7 streams (Entity, Row7[A,B,C,D,E,F,G]).
func Components7[A, B, C, D, E, F, G any](v *View) iter.Seq2[Entity, Row7[A, B, C, D, E, F, G]] {
	return func(yield func(Entity, Row7[A, B, C, D, E, F, G]) bool) {
		for c := range v.Groups() {
			a, ok := Fetch[A](c)
			if !ok {
				continue
			}
			b, ok := Fetch[B](c)
			if !ok {
				continue
			}
			cc, ok := Fetch[C](c)
			if !ok {
				continue
			}
			d, ok := Fetch[D](c)
			if !ok {
				continue
			}
			e, ok := Fetch[E](c)
			if !ok {
				continue
			}
			f, ok := Fetch[F](c)
			if !ok {
				continue
			}
			g, ok := Fetch[G](c)
			if !ok {
				continue
			}
			if !yield(c.Entity(), Row7[A, B, C, D, E, F, G]{A: a, B: b, C: cc, D: d, E: e, F: f, G: g}) {
				return
			}
		}
	}
}

// Components8 streams (Entity, Row8[A,B,C,D,E,F,G,H]).
func Components8[A, B, C, D, E, F, G, H any](v *View) iter.Seq2[Entity, Row8[A, B, C, D, E, F, G, H]] {
	return func(yield func(Entity, Row8[A, B, C, D, E, F, G, H]) bool) {
		for c := range v.Groups() {
			a, ok := Fetch[A](c)
			if !ok {
				continue
			}
			b, ok := Fetch[B](c)
			if !ok {
				continue
			}
			cc, ok := Fetch[C](c)
			if !ok {
				continue
			}
			d, ok := Fetch[D](c)
			if !ok {
				continue
			}
			e, ok := Fetch[E](c)
			if !ok {
				continue
			}
			f, ok := Fetch[F](c)
			if !ok {
				continue
			}
			g, ok := Fetch[G](c)
			if !ok {
				continue
			}
			h, ok := Fetch[H](c)
			if !ok {
				continue
			}
			if !yield(c.Entity(), Row8[A, B, C, D, E, F, G, H]{A: a, B: b, C: cc, D: d, E: e, F: f, G: g, H: h}) {
				return
			}
		}
	}
}

// Components9 streams (Entity, Row9[A,B,C,D,E,F,G,H,I]).
func Components9[A, B, C, D, E, F, G, H, I any](v *View) iter.Seq2[Entity, Row9[A, B, C, D, E, F, G, H, I]] {
	return func(yield func(Entity, Row9[A, B, C, D, E, F, G, H, I]) bool) {
		for c := range v.Groups() {
			a, ok := Fetch[A](c)
			if !ok {
				continue
			}
			b, ok := Fetch[B](c)
			if !ok {
				continue
			}
			cc, ok := Fetch[C](c)
			if !ok {
				continue
			}
			d, ok := Fetch[D](c)
			if !ok {
				continue
			}
			e, ok := Fetch[E](c)
			if !ok {
				continue
			}
			f, ok := Fetch[F](c)
			if !ok {
				continue
			}
			g, ok := Fetch[G](c)
			if !ok {
				continue
			}
			h, ok := Fetch[H](c)
			if !ok {
				continue
			}
			i, ok := Fetch[I](c)
			if !ok {
				continue
			}
			row := Row9[A, B, C, D, E, F, G, H, I]{A: a, B: b, C: cc, D: d, E: e, F: f, G: g, H: h, I: i}
			if !yield(c.Entity(), row) {
				return
			}
		}
	}
}

// GetComponents2 reads A and B directly off e, without a View. Raises like
// GetRef: InvalidComponentError for an unregistered type, MissingComponentError
// for one e does not carry.
func GetComponents2[A, B any](r *Registry, e Entity) (*A, *B, error) {
	a, err := GetRef[A](r, e)
	if err != nil {
		return nil, nil, err
	}
	b, err := GetRef[B](r, e)
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

// GetComponents3 reads A, B and C directly off e.
func GetComponents3[A, B, C any](r *Registry, e Entity) (*A, *B, *C, error) {
	a, b, err := GetComponents2[A, B](r, e)
	if err != nil {
		return nil, nil, nil, err
	}
	c, err := GetRef[C](r, e)
	if err != nil {
		return nil, nil, nil, err
	}
	return a, b, c, nil
}

// GetComponents4 reads A through D directly off e.
func GetComponents4[A, B, C, D any](r *Registry, e Entity) (*A, *B, *C, *D, error) {
	a, b, c, err := GetComponents3[A, B, C](r, e)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	d, err := GetRef[D](r, e)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	return a, b, c, d, nil
}

// GetComponents5 reads A through E directly off e.
func GetComponents5[A, B, C, D, E any](r *Registry, e Entity) (*A, *B, *C, *D, *E, error) {
	a, b, c, d, err := GetComponents4[A, B, C, D](r, e)
	if err != nil {
		return nil, nil, nil, nil, nil, err
	}
	f, err := GetRef[E](r, e)
	if err != nil {
		return nil, nil, nil, nil, nil, err
	}
	return a, b, c, d, f, nil
}

// GetComponents6 reads A through F directly off e.
func GetComponents6[A, B, C, D, E, F any](r *Registry, e Entity) (*A, *B, *C, *D, *E, *F, error) {
	a, b, c, d, ee, err := GetComponents5[A, B, C, D, E](r, e)
	if err != nil {
		return nil, nil, nil, nil, nil, nil, err
	}
	f, err := GetRef[F](r, e)
	if err != nil {
		return nil, nil, nil, nil, nil, nil, err
	}
	return a, b, c, d, ee, f, nil
}

// GetComponents7 reads A through G directly off e.
func GetComponents7[A, B, C, D, E, F, G any](r *Registry, e Entity) (*A, *B, *C, *D, *E, *F, *G, error) {
	a, b, c, d, ee, f, err := GetComponents6[A, B, C, D, E, F](r, e)
	if err != nil {
		return nil, nil, nil, nil, nil, nil, nil, err
	}
	g, err := GetRef[G](r, e)
	if err != nil {
		return nil, nil, nil, nil, nil, nil, nil, err
	}
	return a, b, c, d, ee, f, g, nil
}

// GetComponents8 reads A through H directly off e.
func GetComponents8[A, B, C, D, E, F, G, H any](r *Registry, e Entity) (*A, *B, *C, *D, *E, *F, *G, *H, error) {
	a, b, c, d, ee, f, g, err := GetComponents7[A, B, C, D, E, F, G](r, e)
	if err != nil {
		return nil, nil, nil, nil, nil, nil, nil, nil, err
	}
	h, err := GetRef[H](r, e)
	if err != nil {
		return nil, nil, nil, nil, nil, nil, nil, nil, err
	}
	return a, b, c, d, ee, f, g, h, nil
}

// GetComponents9 reads A through I directly off e.
func GetComponents9[A, B, C, D, E, F, G, H, I any](r *Registry, e Entity) (*A, *B, *C, *D, *E, *F, *G, *H, *I, error) {
	a, b, c, d, ee, f, g, h, err := GetComponents8[A, B, C, D, E, F, G, H](r, e)
	if err != nil {
		return nil, nil, nil, nil, nil, nil, nil, nil, nil, err
	}
	i, err := GetRef[I](r, e)
	if err != nil {
		return nil, nil, nil, nil, nil, nil, nil, nil, nil, err
	}
	return a, b, c, d, ee, f, g, h, i, nil
}
