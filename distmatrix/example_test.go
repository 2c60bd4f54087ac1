package distmatrix_test

import (
	"fmt"
	"strings"

	"github.com/saitounei/phylonj/distmatrix"
)

func ExampleParse() {
	input := ",A,B,C\n" +
		"A,0,2,4\n" +
		"B,2,0,4\n" +
		"C,4,4,0\n"

	m, err := distmatrix.Parse(strings.NewReader(input))
	if err != nil {
		fmt.Println("parse error:", err)
		return
	}

	fmt.Println(m.Labels)
	fmt.Println(m.D[0][2])
	// Output:
	// [A B C]
	// 4
}
