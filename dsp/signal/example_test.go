package signal

import "fmt"

func ExampleGenerator_Sine() {
	g := NewGenerator(WithSampleRate(8000))

	out, err := g.Sine(2000, 1.0, 4)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("%.0f %.0f %.0f %.0f\n", out[0], out[1], out[2], out[3])
	// Output:
	// 0 1 0 -1
}

func ExampleNormalize() {
	out, _ := Normalize([]float64{0.25, -0.5}, 0.95)
	fmt.Printf("%.3f %.3f\n", out[0], out[1])
	// Output:
	// 0.475 -0.950
}
