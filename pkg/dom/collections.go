package dom

//go:generate go run github.com/treefold-dev/treefold/cmd/domgen tuples -o tuples_gen.go

// Nothing is the empty collection. Folding it is a no-op.
type Nothing struct{}

// ProcessAll succeeds without dispatching anything.
func (Nothing) ProcessAll(ProcessFunc) error {
	return nil
}

// Option is a collection of zero or one members.
type Option[T NodeList] struct {
	value T
	ok    bool
}

// Some returns an Option holding v.
func Some[T NodeList](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None returns the empty Option.
func None[T NodeList]() Option[T] {
	return Option[T]{}
}

// IsSome reports whether the Option holds a member.
func (o Option[T]) IsSome() bool {
	return o.ok
}

// ProcessAll folds the held member, if any.
func (o Option[T]) ProcessAll(fn ProcessFunc) error {
	if !o.ok {
		return nil
	}
	return o.value.ProcessAll(fn)
}

// List is a homogeneous sequence of collections, folded left to right.
type List[T NodeList] []T

// ProcessAll folds each member in order, short-circuiting on the first
// error.
func (l List[T]) ProcessAll(fn ProcessFunc) error {
	for _, v := range l {
		if err := v.ProcessAll(fn); err != nil {
			return err
		}
	}
	return nil
}
