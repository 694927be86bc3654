// Package testing starts the postgres and redis containers used by the
// integration tests.
package testing

import (
	"context"
	"database/sql"
	"fmt"
	"net"

	"github.com/go-redis/redis/v8"
	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
)

const PostgresDBName = "healthdash"

// Containers holds the running test dependencies.
type Containers struct {
	pool      *dockertest.Pool
	resources []*dockertest.Resource

	RedisPort    string
	PostgresPort string
}

func StartContainers(ctx context.Context) (*Containers, error) {
	// uses a sensible default on windows (tcp/http) and linux/osx (socket)
	pool, err := dockertest.NewPool("")
	if err != nil {
		return nil, fmt.Errorf("create dockertest pool: %w", err)
	}
	if err := pool.Client.Ping(); err != nil {
		return nil, fmt.Errorf("ping docker: %w", err)
	}

	c := &Containers{pool: pool}
	if err := c.startRedis(ctx); err != nil {
		c.Close()
		return nil, err
	}
	if err := c.startPostgres(); err != nil {
		c.Close()
		return nil, err
	}
	return c, nil
}

func (c *Containers) startRedis(ctx context.Context) error {
	resource, err := c.pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Tag:        "7.2",
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
	})
	if err != nil {
		return fmt.Errorf("run redis: %w", err)
	}
	c.resources = append(c.resources, resource)
	c.RedisPort = resource.GetPort("6379/tcp")

	rdb := c.RedisClient()
	defer func() {
		_ = rdb.Close()
	}()
	if err := c.pool.Retry(func() error {
		return rdb.Ping(ctx).Err()
	}); err != nil {
		return fmt.Errorf("connect to redis: %w", err)
	}
	return nil
}

func (c *Containers) startPostgres() error {
	resource, err := c.pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16",
		Env: []string{
			"POSTGRES_USER=postgres",
			"POSTGRES_DB=" + PostgresDBName,
			"POSTGRES_HOST_AUTH_METHOD=trust",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{
			Name: "no",
		}
	})
	if err != nil {
		return fmt.Errorf("run postgres: %w", err)
	}
	c.resources = append(c.resources, resource)
	c.PostgresPort = resource.GetPort("5432/tcp")

	sqlDB, err := sql.Open("postgres", c.PostgresConnString())
	if err != nil {
		return fmt.Errorf("open postgres: %w", err)
	}
	defer func() {
		_ = sqlDB.Close()
	}()
	if err := c.pool.Retry(sqlDB.Ping); err != nil {
		return fmt.Errorf("connect to postgres: %w", err)
	}
	return nil
}

func (c *Containers) PostgresConnString() string {
	return fmt.Sprintf(
		"postgres://postgres@localhost:%s/%s?sslmode=disable",
		c.PostgresPort, PostgresDBName,
	)
}

func (c *Containers) RedisClient() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr: net.JoinHostPort("localhost", c.RedisPort),
		DB:   0, // use default DB
	})
}

func (c *Containers) Close() {
	for _, resource := range c.resources {
		if err := c.pool.Purge(resource); err != nil {
			fmt.Printf("purge container %s: %s\n", resource.Container.Name, err)
		}
	}
}
