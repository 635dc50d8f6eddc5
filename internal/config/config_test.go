package config

import (
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	c := Default()
	if c.Addr() != "0.0.0.0:80" {
		t.Fatalf("addr=%q", c.Addr())
	}
	if c.ReadTimeout != 30*time.Second || c.WriteTimeout != 30*time.Second {
		t.Fatalf("timeouts read=%s write=%s", c.ReadTimeout, c.WriteTimeout)
	}
	if c.ReadHeaderTimeout == 0 || c.IdleTimeout == 0 {
		t.Fatalf("zero timeout in %+v", c)
	}
	if c.AccessLog {
		t.Fatal("access log should default off")
	}
}

func TestFromEnv_Default(t *testing.T) {
	t.Setenv("HEALTH_PORT", "")
	t.Setenv("HEALTH_ACCESS_LOG", "")

	c, err := FromEnv()
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if c.Port != 80 {
		t.Fatalf("port=%d", c.Port)
	}
	if c.AccessLog {
		t.Fatal("access log should be off")
	}
}

func TestFromEnv_Port(t *testing.T) {
	t.Setenv("HEALTH_PORT", " 8080 ")
	t.Setenv("HEALTH_ACCESS_LOG", "")

	c, err := FromEnv()
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if c.Addr() != "0.0.0.0:8080" {
		t.Fatalf("addr=%q", c.Addr())
	}
}

func TestFromEnv_InvalidPort(t *testing.T) {
	for _, v := range []string{"http", "0", "-1", "65536", "80.5"} {
		t.Run(v, func(t *testing.T) {
			t.Setenv("HEALTH_PORT", v)
			if _, err := FromEnv(); err == nil {
				t.Fatalf("expected error for %q", v)
			}
		})
	}
}

func TestFromEnv_AccessLog(t *testing.T) {
	t.Setenv("HEALTH_PORT", "")

	for _, v := range []string{"1", "true", "TRUE", "on", "yes"} {
		t.Setenv("HEALTH_ACCESS_LOG", v)
		c, err := FromEnv()
		if err != nil {
			t.Fatalf("value=%q err=%v", v, err)
		}
		if !c.AccessLog {
			t.Fatalf("value=%q access log off", v)
		}
	}

	t.Setenv("HEALTH_ACCESS_LOG", "maybe")
	if _, err := FromEnv(); err == nil {
		t.Fatal("expected error")
	}
}

func TestAddr_IPv6Host(t *testing.T) {
	t.Parallel()

	c := Default()
	c.Host = "::1"
	c.Port = 9000
	if c.Addr() != "[::1]:9000" {
		t.Fatalf("addr=%q", c.Addr())
	}
}
