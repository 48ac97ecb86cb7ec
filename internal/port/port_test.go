package port

import (
	"context"
	"errors"
	"net"
	"reflect"
	"strings"
	"testing"
)

func TestValidatePort(t *testing.T) {
	tests := []struct {
		port    int
		wantErr bool
	}{
		{22, false},
		{1, false},
		{65535, false},
		{0, true},
		{-1, true},
		{65536, true},
	}

	for _, tt := range tests {
		err := ValidatePort(tt.port)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidatePort(%d) error = %v, wantErr %v", tt.port, err, tt.wantErr)
		}
	}
}

func TestProbe_Free(t *testing.T) {
	prober := NewMockProber()

	inUse, listeners, err := Probe(context.Background(), prober, 22)
	if err != nil {
		t.Fatalf("Probe failed: %v", err)
	}
	if inUse {
		t.Error("port should be reported free")
	}
	if len(listeners) != 0 {
		t.Errorf("listeners = %v, want none", listeners)
	}
	if !reflect.DeepEqual(prober.Calls, []int{22}) {
		t.Errorf("Calls = %v, want [22]", prober.Calls)
	}
}

func TestProbe_Occupied(t *testing.T) {
	prober := NewMockProber(Listener{Port: 22, PID: 17, Address: "0.0.0.0", Family: "tcp4"})

	inUse, listeners, err := Probe(context.Background(), prober, 22)
	if err != nil {
		t.Fatalf("Probe failed: %v", err)
	}
	if !inUse {
		t.Error("port should be reported in use")
	}
	if len(listeners) != 1 {
		t.Errorf("listeners = %v, want one", listeners)
	}
}

func TestProbe_Error(t *testing.T) {
	prober := &MockProber{Err: errors.New("permission denied")}

	_, _, err := Probe(context.Background(), prober, 22)
	if err == nil {
		t.Fatal("Probe should propagate prober errors")
	}
}

func TestProbe_InvalidPort(t *testing.T) {
	prober := NewMockProber()

	if _, _, err := Probe(context.Background(), prober, 0); err == nil {
		t.Error("Probe should reject port 0")
	}
	if prober.CallCount() != 0 {
		t.Error("an invalid port should not be probed")
	}
}

func TestPIDs(t *testing.T) {
	listeners := []Listener{
		{PID: 30},
		{PID: 10},
		{PID: 30},
		{PID: 0},
	}

	got := PIDs(listeners)
	want := []int32{10, 30}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("PIDs() = %v, want %v", got, want)
	}
}

func TestListener_String(t *testing.T) {
	withPID := Listener{Port: 22, PID: 5, Address: "0.0.0.0", Family: "tcp4"}
	if got := withPID.String(); got != "tcp4 0.0.0.0:22 (pid 5)" {
		t.Errorf("String() = %q", got)
	}

	withoutPID := Listener{Port: 22, Address: "::", Family: "tcp6"}
	if got := withoutPID.String(); got != "tcp6 [::]:22" {
		t.Errorf("String() = %q", got)
	}

	loopback6 := Listener{Port: 40685, PID: 26539, Address: "::1", Family: "tcp6"}
	if got := loopback6.String(); got != "tcp6 [::1]:40685 (pid 26539)" {
		t.Errorf("String() = %q, want the IPv6 address bracketed", got)
	}
}

func TestSystemProber_FindsOwnListener(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Skipf("cannot listen: %v", err)
	}
	defer ln.Close()

	p := ln.Addr().(*net.TCPAddr).Port

	inUse, listeners, err := Probe(context.Background(), SystemProber{}, p)
	if err != nil {
		if strings.Contains(err.Error(), "not implemented") {
			t.Skip("socket listing not supported on this platform")
		}
		t.Fatalf("Probe failed: %v", err)
	}
	if !inUse {
		t.Fatalf("port %d should be in use, listeners: %v", p, listeners)
	}
	if listeners[0].Family != "tcp4" {
		t.Errorf("Family = %q, want tcp4", listeners[0].Family)
	}
}
