package main

import (
	"flag"
	"fmt"

	"github.com/akmonengine/cubeintersect"
	"github.com/akmonengine/cubeintersect/geometry"
	"github.com/labstack/gommon/log"
)

func main() {
	coord1 := flag.String("c1", "10,10,0", "center of the first cube, as x,y,z")
	side1 := flag.Int("s1", 5, "side of the first cube")
	coord2 := flag.String("c2", "9, 9, 0", "center of the second cube, as x,y,z")
	side2 := flag.Int("s2", 2, "side of the second cube")
	raw := flag.Bool("raw", false, "multiply unclamped extents")
	flag.Parse()

	policy := geometry.ExtentClamped
	if *raw {
		policy = geometry.ExtentRaw
	}
	service := cubeintersect.NewIntersectionService(cubeintersect.WithExtentPolicy(policy))

	log.Debugf("cube 1 center %s side %d, cube 2 center %s side %d, policy %s",
		*coord1, *side1, *coord2, *side2, policy)

	volume, err := service.CalculateIntersectionVolume(*coord1, *side1, *coord2, *side2)
	if err != nil {
		log.Fatalf("intersection volume: %v", err)
	}

	fmt.Println(cubeintersect.Describe(volume))
}
