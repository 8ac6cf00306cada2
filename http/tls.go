package http

import (
	"context"
	"net"
	"net/http"

	utls "github.com/refraction-networking/utls"
)

// newChromeTransport returns a transport whose TLS handshakes mimic Chrome.
// Sites behind bot protection often reject Go's default ClientHello.
func newChromeTransport() *http.Transport {
	return &http.Transport{
		Proxy:          http.ProxyFromEnvironment,
		DialTLSContext: dialTLSChrome,
	}
}

// dialTLSChrome establishes a TLS connection using a Chrome fingerprint.
// ALPN is limited to HTTP/1.1 because http.Transport cannot speak HTTP/2
// over a connection it did not negotiate itself.
func dialTLSChrome(ctx context.Context, network, addr string) (net.Conn, error) {
	dialer := &net.Dialer{}
	rawConn, err := dialer.DialContext(ctx, network, addr)
	if err != nil {
		return nil, err
	}

	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		rawConn.Close()
		return nil, err
	}

	tlsConn := utls.UClient(rawConn, &utls.Config{ServerName: host}, utls.HelloCustom)
	preset, err := utls.UTLSIdToSpec(utls.HelloChrome_Auto)
	if err != nil {
		rawConn.Close()
		return nil, err
	}
	for _, ext := range preset.Extensions {
		if alpn, ok := ext.(*utls.ALPNExtension); ok {
			alpn.AlpnProtocols = []string{"http/1.1"}
		}
	}
	if err := tlsConn.ApplyPreset(&preset); err != nil {
		rawConn.Close()
		return nil, err
	}

	if err := tlsConn.HandshakeContext(ctx); err != nil {
		rawConn.Close()
		return nil, err
	}
	return tlsConn, nil
}
