package rc

// Stereo runs one independent solver instance per channel. Channels
// never share state; this is the only multi-channel arrangement the
// circuit model supports.
type Stereo struct {
	left  Solver
	right Solver
}

// NewStereo constructs a stereo helper with independent left/right
// solver state built from the same options.
func NewStereo(sampleRate float64, opts ...Option) (*Stereo, error) {
	left, err := New(sampleRate, opts...)
	if err != nil {
		return nil, err
	}

	right, err := New(sampleRate, opts...)
	if err != nil {
		return nil, err
	}

	return &Stereo{left: left, right: right}, nil
}

// Left returns the left-channel solver.
func (s *Stereo) Left() Solver { return s.left }

// Right returns the right-channel solver.
func (s *Stereo) Right() Solver { return s.right }

// Prepare updates both channels' sample rate.
func (s *Stereo) Prepare(sampleRate float64) error {
	if err := s.left.Prepare(sampleRate); err != nil {
		return err
	}

	return s.right.Prepare(sampleRate)
}

// SetKnobs updates both channels' element values.
func (s *Stereo) SetKnobs(resistance, capacitance float64) error {
	if err := s.left.SetKnobs(resistance, capacitance); err != nil {
		return err
	}

	return s.right.SetKnobs(resistance, capacitance)
}

// Reset clears both channel states.
func (s *Stereo) Reset() {
	s.left.Reset()
	s.right.Reset()
}

// ProcessSample processes one stereo sample frame.
func (s *Stereo) ProcessSample(leftIn, rightIn float64) (leftOut, rightOut float64) {
	return s.left.ProcessSample(leftIn), s.right.ProcessSample(rightIn)
}

// ProcessInPlace processes stereo planar buffers in place.
func (s *Stereo) ProcessInPlace(left, right []float64) {
	n := len(left)
	if n == 0 {
		return
	}

	_ = right[n-1]

	for i := range n {
		left[i], right[i] = s.ProcessSample(left[i], right[i])
	}
}
