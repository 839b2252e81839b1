package evaluator

import (
	"math"
	"testing"
)

func TestInspect(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{NIL, "nil"},
		{TRUE, "true"},
		{FALSE, "false"},
		{&Number{Value: 3}, "3"},
		{&Number{Value: -0.25}, "-0.25"},
		{&Number{Value: math.Inf(1)}, "Infinity"},
		{&Number{Value: math.NaN()}, "NaN"},
		{&String{Value: "hi there"}, "hi there"},
	}
	for _, tt := range tests {
		if got := tt.v.Inspect(); got != tt.want {
			t.Errorf("%s.Inspect() = %q, want %q", tt.v.Type(), got, tt.want)
		}
	}
}

func TestFromNative(t *testing.T) {
	tests := []struct {
		in       interface{}
		wantType ValueType
		ok       bool
	}{
		{nil, NIL_VALUE, true},
		{true, BOOLEAN_VALUE, true},
		{2.5, NUMBER_VALUE, true},
		{"s", STRING_VALUE, true},
		{&String{Value: "already"}, "", false},
		{(*Number)(nil), "", false},
		{7, "", false},
		{float32(1), "", false},
		{[]string{"a"}, "", false},
	}
	for _, tt := range tests {
		v, ok := FromNative(tt.in)
		if ok != tt.ok {
			t.Errorf("FromNative(%#v) ok = %t, want %t", tt.in, ok, tt.ok)
			continue
		}
		if ok && v.Type() != tt.wantType {
			t.Errorf("FromNative(%#v) type = %s, want %s", tt.in, v.Type(), tt.wantType)
		}
	}
}

func TestIsTruthy(t *testing.T) {
	tests := []struct {
		v    Value
		want bool
	}{
		{NIL, false},
		{FALSE, false},
		{TRUE, true},
		{&Number{Value: 0}, true},
		{&Number{Value: math.NaN()}, true},
		{&String{Value: ""}, true},
		{nil, false},
	}
	for _, tt := range tests {
		if got := IsTruthy(tt.v); got != tt.want {
			t.Errorf("IsTruthy(%v) = %t, want %t", tt.v, got, tt.want)
		}
	}
}

func TestEqual(t *testing.T) {
	nan := &Number{Value: math.NaN()}
	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"nil nil", NIL, &Nil{}, true},
		{"nil bool", NIL, FALSE, false},
		{"bool nil", FALSE, NIL, false},
		{"distinct number objects", &Number{Value: 2}, &Number{Value: 2}, true},
		{"zero signs", &Number{Value: 0}, &Number{Value: math.Copysign(0, -1)}, true},
		{"nan", nan, nan, false},
		{"strings", &String{Value: "a"}, &String{Value: "a"}, true},
		{"number string", &Number{Value: 1}, &String{Value: "1"}, false},
		{"bool number", TRUE, &Number{Value: 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal = %t, want %t", got, tt.want)
			}
			if got := Equal(tt.b, tt.a); got != tt.want {
				t.Errorf("Equal is not symmetric: got %t", got)
			}
		})
	}
}
