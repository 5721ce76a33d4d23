package skills_test

import (
	"fmt"

	"github.com/dav88dev/skillorbit/pkg/skills"
)

func ExampleBuild() {
	reg, err := skills.Build([]skills.Input{
		{Name: "Go", Level: 90, Connections: []string{"Docker", "Kubernetes"}},
		{Name: "Docker", Level: 80},
		{Name: "PostgreSQL", Level: 70, Connections: []string{"Go"}},
	})
	if err != nil {
		panic(err)
	}

	fmt.Println("Skills:", reg.Len())
	fmt.Println("Edges:", reg.Edges())
	fmt.Println("Docker-Go:", reg.IsConnectedByName("Docker", "Go"))
	fmt.Println("Dangling:", reg.Dangling())
	// Output:
	// Skills: 3
	// Edges: [{0 1} {0 2}]
	// Docker-Go: true
	// Dangling: [{0 Kubernetes}]
}
