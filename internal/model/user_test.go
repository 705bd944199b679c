package model

import "testing"

func TestPrinterEndpointFallback(t *testing.T) {
	u := &User{}
	for _, kind := range []JobKind{JobClient, JobKitchen} {
		ep := u.PrinterEndpoint(kind)
		if ep.IP != DefaultPrinterIP || ep.Port != DefaultPrinterPort {
			t.Errorf("%s endpoint = %s:%d, want defaults", kind, ep.IP, ep.Port)
		}
	}
}

func TestPrinterEndpointPerKind(t *testing.T) {
	u := &User{
		PrinterClientIP:    "192.168.1.10",
		PrinterClientPort:  9100,
		PrinterKitchenIP:   "192.168.1.20",
		PrinterKitchenPort: 9101,
	}
	if ep := u.PrinterEndpoint(JobClient); ep.IP != "192.168.1.10" || ep.Port != 9100 {
		t.Errorf("client endpoint = %s:%d", ep.IP, ep.Port)
	}
	if ep := u.PrinterEndpoint(JobKitchen); ep.IP != "192.168.1.20" || ep.Port != 9101 {
		t.Errorf("kitchen endpoint = %s:%d", ep.IP, ep.Port)
	}
}

func TestPrinterEndpointPartialConfig(t *testing.T) {
	u := &User{PrinterClientIP: "192.168.1.10"}
	if ep := u.PrinterEndpoint(JobClient); ep.IP != "192.168.1.10" || ep.Port != DefaultPrinterPort {
		t.Errorf("endpoint = %s:%d, want configured IP with default port", ep.IP, ep.Port)
	}
}
