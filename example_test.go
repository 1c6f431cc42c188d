package gctp_test

import (
	"fmt"

	"github.com/landproj/gctp"
)

func ExampleNewTransformation() {
	input := gctp.Projection{
		Code:     gctp.Geographic,
		Units:    gctp.Degrees,
		Spheroid: gctp.WGS84,
	}
	output := gctp.Projection{
		Code:     gctp.UTM,
		Zone:     13,
		Units:    gctp.Meters,
		Spheroid: gctp.WGS84,
	}

	trans, err := gctp.NewTransformation(input, output)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer trans.Destroy()

	x, y, err := trans.Transform(-104.9903, 39.7392, gctp.Forward)
	if err != nil {
		fmt.Println(err)
		return
	}

	lon, lat, err := trans.Transform(x, y, gctp.Inverse)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.4f %.4f\n", lon, lat)
	// Output:
	// -104.9903 39.7392
}

func ExampleDMSToDegrees() {
	deg, err := gctp.DMSToDegrees(120025045.25)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.7f\n", deg)
	// Output:
	// 120.4292361
}
