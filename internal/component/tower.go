// component/tower.go
package component

type Tower struct {
	X, Y      float64
	Range     float64 // радиус поражения, фиксирован при постройке
	Thermal   Thermal
	Highlight float64 // подсветка после долгого нажатия, гаснет со временем
}
