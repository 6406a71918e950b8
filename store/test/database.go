package test

import (
	"context"
	"fmt"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mindwell-care/patients/store"
)

const (
	mongoTestHost = "localhost:27017"
	mongoTimeout  = time.Second * 5
)

var database *mongo.Database

// SetupDatabase connects to the local test mongo instance and creates a
// throwaway database for the current suite. Returns false when mongo is not
// reachable so callers can skip integration specs.
func SetupDatabase() bool {
	cfg := &store.Config{Hosts: mongoTestHost, Scheme: "mongodb"}
	client, err := store.NewClient(cfg)
	Expect(err).ToNot(HaveOccurred())

	ctx, cancel := context.WithTimeout(context.Background(), mongoTimeout)
	defer cancel()
	if err := client.Ping(ctx, nil); err != nil {
		return false
	}

	databaseName := fmt.Sprintf("patients_test_%d_%d", GinkgoRandomSeed(), GinkgoParallelProcess())
	database = client.Database(databaseName)
	return true
}

func TeardownDatabase() {
	if database == nil {
		return
	}
	Expect(database.Drop(context.Background())).To(Succeed())

	ctx, cancel := context.WithTimeout(context.Background(), mongoTimeout)
	defer cancel()
	Expect(database.Client().Disconnect(ctx)).To(Succeed())
	database = nil
}

func GetTestDatabase() *mongo.Database {
	Expect(database).ToNot(BeNil())
	return database
}
