package guard

// Compose1 is the statically typed form of Compose for unary functions.
func Compose1[A, R any](ga, gr Guard, fn func(A) R, opts ...Option) (func(A) (R, error), error) {
	f, err := Compose([]Guard{ga, gr}, fn, opts...)
	if err != nil {
		return nil, err
	}
	return func(a A) (R, error) {
		return typedResult[R](f(a))
	}, nil
}

// Compose2 is the statically typed form of Compose for binary functions.
func Compose2[A, B, R any](ga, gb, gr Guard, fn func(A, B) R, opts ...Option) (func(A, B) (R, error), error) {
	f, err := Compose([]Guard{ga, gb, gr}, fn, opts...)
	if err != nil {
		return nil, err
	}
	return func(a A, b B) (R, error) {
		return typedResult[R](f(a, b))
	}, nil
}

// Compose3 is the statically typed form of Compose for ternary functions.
func Compose3[A, B, C, R any](ga, gb, gc, gr Guard, fn func(A, B, C) R, opts ...Option) (func(A, B, C) (R, error), error) {
	f, err := Compose([]Guard{ga, gb, gc, gr}, fn, opts...)
	if err != nil {
		return nil, err
	}
	return func(a A, b B, c C) (R, error) {
		return typedResult[R](f(a, b, c))
	}, nil
}

func typedResult[R any](v any, err error) (R, error) {
	var zero R
	if err != nil || v == nil {
		return zero, err
	}
	r, _ := v.(R)
	return r, nil
}
