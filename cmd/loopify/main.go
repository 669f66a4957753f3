// Command loopify submits a return request from the terminal. It drives
// the same wizard flow as the web frontend and downloads the generated
// label; with -local it synthesizes the label without a backend.
package main

import (
	"context"
	"encoding/base64"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/myokyal/loopify/internal/catalog"
	"github.com/myokyal/loopify/internal/client"
	"github.com/myokyal/loopify/internal/returns"
	"github.com/myokyal/loopify/internal/wizard"
)

func main() {
	var (
		server    = flag.String("server", "http://localhost:3000", "Loopify server URL")
		local     = flag.Bool("local", false, "Generate the label locally without a backend")
		category  = flag.String("category", "", "Item category (electronics, clothing, packaging)")
		item      = flag.String("item", "", "Item ID (e.g. phone)")
		condition = flag.String("condition", "", "Condition (like-new, good, worn)")
		method    = flag.String("method", returns.MethodDropoff, "Collection method (dropoff or ship)")
		dropoff   = flag.String("dropoff", "", "Drop-off point name (for method=dropoff)")
		name      = flag.String("name", "", "Sender name (for method=ship)")
		email     = flag.String("email", "", "Sender email (for method=ship)")
		street    = flag.String("street", "", "Street address (for method=ship)")
		city      = flag.String("city", "", "City (for method=ship)")
		zip       = flag.String("zip", "", "Five-digit postal code (for method=ship)")
		photoPath = flag.String("photo", "", "Optional photo file to attach")
		outDir    = flag.String("out", ".", "Directory to save the label into")
	)
	flag.Parse()

	w := wizard.New(nil)
	w.SelectCategory(*category)
	w.SelectItem(*item)
	w.SelectCondition(*condition)
	if err := w.Next(); err != nil {
		log.Fatalf("Item selection: %v", err)
	}

	if err := w.ChooseMethod(*method); err != nil {
		log.Fatalf("Collection method: %v", err)
	}
	switch *method {
	case returns.MethodDropoff:
		point, ok := catalog.FindDropoffPoint(*dropoff)
		if !ok {
			log.Fatalf("Unknown drop-off point %q; available: %v", *dropoff, pointNames())
		}
		w.Selector().OnLocationSelected(point.Lat, point.Lng, point.Name)
	case returns.MethodShip:
		w.SetShipping(returns.ShippingAddress{
			Name:    *name,
			Email:   *email,
			Street:  *street,
			City:    *city,
			Zip:     *zip,
			Country: "MM",
		})
	}

	if *photoPath != "" {
		data, err := os.ReadFile(*photoPath)
		if err != nil {
			log.Fatalf("Read photo: %v", err)
		}
		w.AttachPhoto("data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(data))
	}

	if err := w.Next(); err != nil {
		log.Fatalf("Collection details: %v", err)
	}

	est := w.Reward()
	fmt.Printf("Estimated reward: %s\n", est.Display)

	var submitter client.Submitter
	if *local {
		submitter = client.NewLocal()
	} else {
		submitter = client.NewHTTP(*server)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	path, err := client.SubmitFromReview(ctx, w, submitter, *outDir, consoleNotifier{})
	if err != nil {
		os.Exit(1)
	}
	fmt.Printf("Label saved to %s\n", path)
}

func pointNames() []string {
	points := catalog.DropoffPoints()
	names := make([]string, len(points))
	for i, p := range points {
		names[i] = p.Name
	}
	return names
}

// consoleNotifier prints the flow's transient notifications.
type consoleNotifier struct{}

func (consoleNotifier) Success(msg string) { fmt.Println(msg) }
func (consoleNotifier) Error(msg string)   { fmt.Fprintln(os.Stderr, msg) }
