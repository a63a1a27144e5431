package client

import (
	"errors"
	"os"
	"reflect"
	"testing"
)

func setCredentialEnv(t *testing.T) {
	t.Helper()
	t.Setenv(envUsername, "u")
	t.Setenv(envPassword, "p")
	t.Setenv(envSubdomain, "s")
	t.Setenv(envFulldomain, "s.auth.example.org")
}

func TestFromEnv(t *testing.T) {
	t.Setenv(envAPIBase, "https://auth.example.org")
	if _, err := FromEnv(); err != nil {
		t.Error(err)
	}
}

func TestFromEnvMissing(t *testing.T) {
	t.Setenv(envAPIBase, "")
	os.Unsetenv(envAPIBase)

	_, err := FromEnv()

	var me *MissingEnvError
	if !errors.As(err, &me) {
		t.Fatalf("expected MissingEnvError, got %v", err)
	}
	if me.Name != envAPIBase {
		t.Errorf("unexpected variable name: %s", me.Name)
	}
}

func TestCredentialsFromEnv(t *testing.T) {
	setCredentialEnv(t)
	t.Setenv(envAllowFrom, "1.2.3.4/32, 10.0.0.0/8")

	creds, err := CredentialsFromEnv()
	if err != nil {
		t.Fatal(err)
	}
	if creds.Username != "u" || creds.Password != "p" ||
		creds.Subdomain != "s" || creds.Fulldomain != "s.auth.example.org" {
		t.Errorf("unexpected credentials: %+v", creds)
	}
	if !reflect.DeepEqual(creds.AllowFrom, []string{"1.2.3.4/32", "10.0.0.0/8"}) {
		t.Errorf("unexpected allowfrom: %v", creds.AllowFrom)
	}
}

func TestCredentialsFromEnvNoAllowFrom(t *testing.T) {
	setCredentialEnv(t)
	t.Setenv(envAllowFrom, "")
	os.Unsetenv(envAllowFrom)

	creds, err := CredentialsFromEnv()
	if err != nil {
		t.Fatal(err)
	}
	if len(creds.AllowFrom) != 0 {
		t.Errorf("allowfrom should default to empty, got %v", creds.AllowFrom)
	}
}

func TestCredentialsFromEnvMissing(t *testing.T) {
	for _, name := range []string{envUsername, envPassword, envSubdomain, envFulldomain} {
		setCredentialEnv(t)
		os.Unsetenv(name)

		_, err := CredentialsFromEnv()

		var me *MissingEnvError
		if !errors.As(err, &me) {
			t.Fatalf("expected MissingEnvError for %s, got %v", name, err)
		}
		if me.Name != name {
			t.Errorf("unexpected variable name: %s (want %s)", me.Name, name)
		}
	}
}

func TestSplitAllowFrom(t *testing.T) {
	got := splitAllowFrom(" 1.2.3.4/32 ,, 10.0.0.0/8,")
	if !reflect.DeepEqual(got, []string{"1.2.3.4/32", "10.0.0.0/8"}) {
		t.Errorf("unexpected list: %v", got)
	}
}
