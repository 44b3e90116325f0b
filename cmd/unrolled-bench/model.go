package main

import (
	"fmt"
	"iter"
	"slices"

	"github.com/phroun/unrolled"
)

// sliceSeq is the plain-slice reference model workloads are checked against.
type sliceSeq struct {
	values []int
}

var _ unrolled.Mutable[int] = (*sliceSeq)(nil)

func (s *sliceSeq) Len() int { return len(s.values) }

func (s *sliceSeq) Get(index int) (int, error) {
	if index < 0 || index >= len(s.values) {
		return 0, fmt.Errorf("%w: index %d", unrolled.ErrIndexOutOfRange, index)
	}
	return s.values[index], nil
}

func (s *sliceSeq) All() iter.Seq2[int, int] {
	return slices.All(s.values)
}

func (s *sliceSeq) Set(index int, v int) error {
	if index < 0 || index >= len(s.values) {
		return fmt.Errorf("%w: index %d", unrolled.ErrIndexOutOfRange, index)
	}
	s.values[index] = v
	return nil
}

func (s *sliceSeq) Insert(index int, v int) error {
	if index < 0 || index > len(s.values) {
		return fmt.Errorf("%w: insert at %d", unrolled.ErrIndexOutOfRange, index)
	}
	s.values = slices.Insert(s.values, index, v)
	return nil
}

func (s *sliceSeq) Remove(index int) (int, error) {
	v, err := s.Get(index)
	if err != nil {
		return 0, err
	}
	s.values = slices.Delete(s.values, index, index+1)
	return v, nil
}
