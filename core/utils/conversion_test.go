package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToInt(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want int
	}{
		{name: "nil", in: nil, want: 0},
		{name: "int", in: 7, want: 7},
		{name: "float", in: float64(1886), want: 1886},
		{name: "string", in: " 1902 ", want: 1902},
		{name: "bytes", in: []byte("12"), want: 12},
		{name: "garbage", in: "n/a", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToInt(tt.in))
		})
	}
}

func TestToString(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{name: "nil", in: nil, want: ""},
		{name: "string", in: " 133604 ", want: "133604"},
		{name: "whole float", in: float64(1334604), want: "1334604"},
		{name: "int", in: 42, want: "42"},
		{name: "bytes", in: []byte("abc"), want: "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToString(tt.in))
		})
	}
}
