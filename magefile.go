//go:build mage
// +build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

var binDir = "bin"

var Default = Build

func Tidy() error {
	return sh.RunV("go", "mod", "tidy")
}

func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Build は api と catalogctl を bin/ に出す。
func Build() error {
	mg.Deps(Vet)

	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return err
	}
	env := map[string]string{"CGO_ENABLED": "0"}
	for _, name := range []string{"api", "catalogctl"} {
		out := filepath.Join(binDir, name+exeSuffix())
		fmt.Println("Building:", out)
		if err := sh.RunWithV(env, "go", "build", "-trimpath", "-o", out, "./cmd/"+name); err != nil {
			return err
		}
	}
	return nil
}

func Test() error {
	return sh.RunV("go", "test", "./...", "-count=1")
}

// TestIntegration は embedded-postgres を使うリポジトリのテストも回す。
func TestIntegration() error {
	env := map[string]string{"PG_INTEGRATION": "1"}
	return sh.RunWithV(env, "go", "test", "./internal/infra/...", "-count=1", "-v")
}

// Run は API サーバーを起動する（.env を読む）。
func Run() error {
	return sh.RunV("go", "run", "./cmd/api")
}

func Clean() error {
	return os.RemoveAll(binDir)
}

func exeSuffix() string {
	if runtime.GOOS == "windows" {
		return ".exe"
	}
	return ""
}
