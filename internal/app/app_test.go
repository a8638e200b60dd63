package app

import (
	"context"
	"encoding/json"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/jouir/check-teamredminer/internal/config"
)

func fakeMiner(t *testing.T, responses map[string]string) *config.Config {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	t.Cleanup(func() { _ = ln.Close() })

	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			go func(c net.Conn) {
				defer c.Close()
				buf := make([]byte, 4096)
				n, err := c.Read(buf)
				if err != nil {
					return
				}
				var req struct {
					Command string `json:"command"`
				}
				if err := json.Unmarshal(buf[:n], &req); err != nil {
					return
				}
				if resp, ok := responses[req.Command]; ok {
					_, _ = c.Write([]byte(resp))
				}
			}(conn)
		}
	}()

	cfg := config.DefaultConfig()
	cfg.Host = "127.0.0.1"
	cfg.Port = ln.Addr().(*net.TCPAddr).Port
	cfg.Timeout = 2 * time.Second
	return &cfg
}

func healthyResponses() map[string]string {
	return map[string]string{
		"summary": `{"STATUS":[{"STATUS":"S","Code":11,"Msg":"Summary"}],"SUMMARY":[{"MHS 30s":50,"Elapsed":3600}],"id":1}`,
		"devs":    `{"STATUS":[{"STATUS":"S","Code":9,"Msg":"1 GPU(s)"}],"DEVS":[{"GPU":0,"Status":"Alive","Temperature":55,"TemperatureMem":60}],"id":1}`,
	}
}

func TestRunHealthyRig(t *testing.T) {
	cfg := fakeMiner(t, healthyResponses())
	cfg.HashrateWarning = config.Bound(10)
	cfg.HashrateCritical = config.Bound(5)

	code, line := Run(context.Background(), cfg, nil)
	if code != 0 {
		t.Fatalf("unexpected exit code: %d", code)
	}
	want := "TEAMREDMINER OK | hashrate=50MH/s;10;5 uptime=3600s temperature_0=55C;70;90 memory_temperature_0=60C;90;110"
	if line != want {
		t.Fatalf("unexpected line: got %q want %q", line, want)
	}
}

func TestRunHotGPU(t *testing.T) {
	cfg := fakeMiner(t, map[string]string{
		"summary": `{"STATUS":[{"STATUS":"S","Code":11,"Msg":"Summary"}],"SUMMARY":[{"MHS 30s":50}],"id":1}`,
		"devs":    `{"STATUS":[{"STATUS":"S","Code":9,"Msg":"1 GPU(s)"}],"DEVS":[{"GPU":0,"Status":"Alive","Temperature":95}],"id":1}`,
	})

	code, line := Run(context.Background(), cfg, nil)
	if code != 2 {
		t.Fatalf("unexpected exit code: %d", code)
	}
	if !strings.Contains(line, "TEAMREDMINER CRITICAL - temperature_0 critical: 95>=90C") {
		t.Fatalf("unexpected line: %q", line)
	}
}

func TestRunDeadGPU(t *testing.T) {
	cfg := fakeMiner(t, map[string]string{
		"summary": `{"STATUS":[{"STATUS":"S","Code":11,"Msg":"Summary"}],"SUMMARY":[{"MHS 30s":50}],"id":1}`,
		"devs":    `{"STATUS":[{"STATUS":"S","Code":9,"Msg":"1 GPU(s)"}],"DEVS":[{"GPU":0,"Status":"Dead","Temperature":40}],"id":1}`,
	})

	code, line := Run(context.Background(), cfg, nil)
	if code != 2 {
		t.Fatalf("unexpected exit code: %d", code)
	}
	if !strings.Contains(line, "alive_0 critical: alive_0 is not True") {
		t.Fatalf("unexpected line: %q", line)
	}
}

func TestRunAPIErrorIsUnknown(t *testing.T) {
	cfg := fakeMiner(t, map[string]string{
		"summary": `{"STATUS":[{"STATUS":"E","Code":14,"Msg":"bad command"}],"id":1}`,
	})

	code, line := Run(context.Background(), cfg, nil)
	if code != 3 {
		t.Fatalf("unexpected exit code: %d", code)
	}
	if !strings.HasPrefix(line, "TEAMREDMINER UNKNOWN - ") || !strings.Contains(line, "bad command") {
		t.Fatalf("unexpected line: %q", line)
	}
}

func TestRunUnreachableMinerIsUnknown(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	port := ln.Addr().(*net.TCPAddr).Port
	_ = ln.Close()

	cfg := config.DefaultConfig()
	cfg.Host = "127.0.0.1"
	cfg.Port = port

	code, line := Run(context.Background(), &cfg, nil)
	if code != 3 {
		t.Fatalf("unexpected exit code: %d", code)
	}
	if !strings.HasPrefix(line, "TEAMREDMINER UNKNOWN - ") {
		t.Fatalf("unexpected line: %q", line)
	}
}

func TestRunIsIdempotent(t *testing.T) {
	cfg := fakeMiner(t, healthyResponses())
	cfg.HashrateWarning = config.Bound(10)

	code1, line1 := Run(context.Background(), cfg, nil)
	code2, line2 := Run(context.Background(), cfg, nil)
	if code1 != code2 || line1 != line2 {
		t.Fatalf("outputs differ: (%d %q) vs (%d %q)", code1, line1, code2, line2)
	}
}
