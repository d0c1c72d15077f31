package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/gophgate/internal/adminctl"
)

func main() {

	ctx := context.Background()

	if err := adminctl.Run(ctx, os.Args[1:], os.Stdin, os.Stdout); err != nil {
		log.Fatalf("%v", err)
	}

}
