// cmd/heatcurve/main.go
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"thermal-td/internal/component"
	"thermal-td/internal/system"
)

// heatcurve печатает кривую нагрева одной башни при непрерывной стрельбе
// и последующем остывании: с базовым профилем и после ужесточения.
// Нужен для подбора баланса без запуска игры.
func main() {
	dt := flag.Float64("dt", 0.2, "шаг симуляции, секунды")
	fire := flag.Int("fire", 25, "сколько шагов подряд башня пытается стрелять")
	cool := flag.Int("cool", 40, "сколько шагов после этого башня остывает")
	shift := flag.Float64("shift", 1.35, "множитель ужесточения для второй кривой")
	rows := flag.Int("rows", 12, "сколько строк каждой кривой печатать, 0: все")
	flag.Parse()

	if *dt <= 0 || *shift <= 0 || *fire < 0 || *cool < 0 {
		fmt.Fprintln(os.Stderr, "heatcurve: dt and shift must be positive, fire and cool non-negative")
		os.Exit(2)
	}

	timeline := make([]bool, 0, *fire+*cool)
	for i := 0; i < *fire; i++ {
		timeline = append(timeline, true)
	}
	for i := 0; i < *cool; i++ {
		timeline = append(timeline, false)
	}

	base := system.BaseProfile()
	rules := system.NewDifficultyRules()
	rules.Escalate(*shift)

	printCurve(os.Stdout, "BASELINE", system.SimulateHeatCurve(timeline, *dt, base), *rows)
	fmt.Println()
	printCurve(os.Stdout, "SHIFTED", system.SimulateHeatCurve(timeline, *dt, rules.Profile()), *rows)
	fmt.Println()
	printProfile(os.Stdout, "shifted profile", rules.Profile())
}

func printCurve(w io.Writer, title string, curve []system.HeatSample, rows int) {
	fmt.Fprintf(w, "%s:\n", title)
	if rows <= 0 || rows > len(curve) {
		rows = len(curve)
	}
	for _, s := range curve[:rows] {
		fmt.Fprintf(w, "t=%5.1fs heat=%6.2f overheated=%-5v fired=%v\n", s.Time, s.Heat, s.Overheated, s.Fired)
	}
}

func printProfile(w io.Writer, title string, p component.Thermal) {
	fmt.Fprintf(w, "%s: capacity=%.1f heat/shot=%.2f dissipation=%.2f/s recovery=%.0f%%\n",
		title, p.Capacity, p.HeatPerShot, p.DissipationRate, p.RecoveryRatio*100)
}
