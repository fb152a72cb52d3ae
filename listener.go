package starrating

// Delegate receives rating notifications from a Widget.
type Delegate interface {
	// RatingChanged is called whenever the selected count changes.
	RatingChanged(count int)
	// RatingDone is called when a pointer interaction completes, with the
	// final selected count.
	RatingDone(count int)
}

// DelegateFuncs adapts a pair of functions to Delegate. Nil functions are
// skipped.
type DelegateFuncs struct {
	Changed func(count int)
	Done    func(count int)
}

// RatingChanged calls f.Changed.
func (f DelegateFuncs) RatingChanged(count int) {
	if f.Changed != nil {
		f.Changed(count)
	}
}

// RatingDone calls f.Done.
func (f DelegateFuncs) RatingDone(count int) {
	if f.Done != nil {
		f.Done(count)
	}
}

// observers holds the two notification slots of a widget: the delegate
// object and the callback pair. The delegate is always notified first.
type observers struct {
	delegate Delegate
	callback DelegateFuncs
}

func (o *observers) changed(count int) {
	if o.delegate != nil {
		o.delegate.RatingChanged(count)
	}
	o.callback.RatingChanged(count)
}

func (o *observers) done(count int) {
	if o.delegate != nil {
		o.delegate.RatingDone(count)
	}
	o.callback.RatingDone(count)
}
