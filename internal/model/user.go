package model

// --- User / Printer Configuration ---

const (
	DefaultPrinterIP   = "192.168.1.194"
	DefaultPrinterPort = 9100
)

// User is the signed-in account document. It carries one printer endpoint
// per device class; unset fields fall back to the defaults above.
type User struct {
	PrinterClientIP    string `firestore:"printerClientIp"`
	PrinterClientPort  int    `firestore:"printerClientPort"`
	PrinterKitchenIP   string `firestore:"printerKitchenIp"`
	PrinterKitchenPort int    `firestore:"printerKitchenPort"`
}

// Endpoint is a TCP-addressable printer.
type Endpoint struct {
	IP   string
	Port int
}

// PrinterEndpoint resolves the device for the given job kind.
func (u *User) PrinterEndpoint(kind JobKind) Endpoint {
	ep := Endpoint{IP: u.PrinterClientIP, Port: u.PrinterClientPort}
	if kind == JobKitchen {
		ep = Endpoint{IP: u.PrinterKitchenIP, Port: u.PrinterKitchenPort}
	}
	if ep.IP == "" {
		ep.IP = DefaultPrinterIP
	}
	if ep.Port == 0 {
		ep.Port = DefaultPrinterPort
	}
	return ep
}
