package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		name string
		in   int
		want string
	}{
		{name: "zero", in: 0, want: "0"},
		{name: "below separator", in: 999, want: "999"},
		{name: "thousands", in: 1234, want: "1,234"},
		{name: "millions", in: 1234567, want: "1,234,567"},
		{name: "negative", in: -1234567, want: "-1,234,567"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatNumber(tt.in))
		})
	}
}

func TestCompactCount(t *testing.T) {
	tests := []struct {
		name string
		in   int
		want string
	}{
		{name: "small stays exact", in: 932, want: "932"},
		{name: "boundary to K", in: 1000, want: "1K"},
		{name: "one decimal kept", in: 1200, want: "1.2K"},
		{name: "decimal truncated not rounded", in: 1999, want: "1.9K"},
		{name: "whole thousands", in: 17000, want: "17K"},
		{name: "millions", in: 4000000, want: "4M"},
		{name: "millions with decimal", in: 2500000, want: "2.5M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CompactCount(tt.in))
		})
	}
}
