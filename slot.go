package array

// Assigner is implemented by element pointers whose copy needs more than a
// plain Go assignment, typically because the element owns storage.
// *Array[T] implements Assigner[Array[T]].
type Assigner[T any] interface {
	Assign(src *T) error
}

// Destroyer is implemented by element pointers that release resources when
// the element's lifetime ends. *Array[T] implements Destroyer.
type Destroyer interface {
	Destroy()
}

// construct brings a raw slot to life holding the default value of T.
func construct[T any](p *T) {
	var zero T
	*p = zero
}

// copyConstruct default-constructs dst and then assigns src into it.
// On error dst is live and must be destroyed by the caller.
func copyConstruct[T any](dst, src *T) error {
	construct(dst)
	if as, ok := any(dst).(Assigner[T]); ok {
		return as.Assign(src)
	}
	*dst = *src
	return nil
}

// moveConstruct transfers src into the raw slot dst and leaves src as a
// zero-valued husk that is still safe to destroy.
func moveConstruct[T any](dst, src *T) {
	*dst = *src
	var zero T
	*src = zero
}

// destroy ends the lifetime of every element in run, in order, and leaves
// the slots raw again.
func destroy[T any](run []T) {
	if _, ok := any((*T)(nil)).(Destroyer); ok {
		for i := range run {
			any(&run[i]).(Destroyer).Destroy()
		}
	}
	clear(run)
}
