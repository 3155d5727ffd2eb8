package main

import "github.com/FelipeFrancca/dieta-facil-sub000/cmd/dieta"

func main() {
	dieta.Execute()
}
