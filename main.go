package main

import (
	"flag"
	"strings"

	"go.uber.org/fx"

	"github.com/joshuarp/image-derivative-api/internal/app"
)

var defaultBin string

func selectedModules(binValue string) []fx.Option {
	selected := strings.TrimSpace(strings.ToLower(binValue))

	switch selected {
	case "delivery":
		return []fx.Option{
			app.DeliveryModule(),
		}
	case "admin":
		return []fx.Option{
			app.AuthModule(),
			app.StylesModule(),
		}
	default:
		return []fx.Option{
			app.AuthModule(),
			app.StylesModule(),
			app.DeliveryModule(),
		}
	}
}

func main() {
	bin := flag.String("bin", defaultBin, "select module binary: delivery|admin (default: all)")
	flag.Parse()

	app.New(*bin, selectedModules(*bin)...).Run()
}
