package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"github.com/vfg2006/order-booker-api/infrastructure/database/postgres"
	"github.com/vfg2006/order-booker-api/infrastructure/repository"
	"github.com/vfg2006/order-booker-api/internal/config"
	"github.com/vfg2006/order-booker-api/internal/domain"
	"github.com/vfg2006/order-booker-api/internal/usecases/authenticating"
)

type connKey struct{}

func initDB(c *cli.Context) error {
	cfg, err := config.NewConfig()
	if err != nil {
		return errors.Wrap(err, "erro ao carregar configuração")
	}

	conn, err := postgres.NewConnection(c.Context, cfg.Database)
	if err != nil {
		return errors.Wrap(err, "erro ao conectar ao PostgreSQL")
	}

	c.Context = context.WithValue(c.Context, connKey{}, conn)
	return nil
}

func closeDB(c *cli.Context) error {
	if conn, ok := c.Context.Value(connKey{}).(*postgres.Connection); ok && conn != nil {
		return conn.Close()
	}
	return nil
}

func connection(c *cli.Context) *postgres.Connection {
	return c.Context.Value(connKey{}).(*postgres.Connection)
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	app := &cli.App{
		Name:  "migrate",
		Usage: "Administra o banco do order booker api",
		Commands: []*cli.Command{
			{
				Name:   "up",
				Usage:  "Cria as tabelas que ainda não existem",
				Before: initDB,
				After:  closeDB,
				Action: runMigrations,
			},
			{
				Name:   "seed",
				Usage:  "Carrega order bookers e configurações padrão quando o banco está vazio",
				Before: initDB,
				After:  closeDB,
				Action: runSeed,
			},
			{
				Name:   "reseed",
				Usage:  "Substitui todos os order bookers pela lista padrão",
				Before: initDB,
				After:  closeDB,
				Action: runReseed,
			},
			{
				Name:  "hash-password",
				Usage: "Gera o valor de ADMIN_PASSWORD_HASH",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "password",
						Usage:   "Senha administrativa; sem ela uma senha forte é gerada",
						EnvVars: []string{"ADMIN_PASSWORD"},
					},
					&cli.IntFlag{
						Name:  "length",
						Usage: "Tamanho da senha gerada",
						Value: 16,
					},
				},
				Action: runHashPassword,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("Falha na execução")
	}
}

func runMigrations(c *cli.Context) error {
	conn := connection(c)

	for i, statement := range schema {
		if _, err := conn.ExecContext(c.Context, statement); err != nil {
			return errors.Wrapf(err, "erro na instrução %d do schema", i+1)
		}
	}

	logrus.WithField("statements", len(schema)).Info("Schema atualizado")
	return nil
}

func runSeed(c *cli.Context) error {
	conn := connection(c)
	orderBookerRepo := repository.NewOrderBookerRepository(conn)
	settingRepo := repository.NewSettingRepository(conn)

	existing, err := orderBookerRepo.List(c.Context)
	if err != nil {
		return errors.Wrap(err, "erro ao listar order bookers")
	}

	if len(existing) == 0 {
		defaults := domain.DefaultOrderBookers()
		if err := orderBookerRepo.ReplaceAll(c.Context, defaults); err != nil {
			return errors.Wrap(err, "erro ao carregar order bookers")
		}
		logrus.WithField("order_bookers", len(defaults)).Info("Order bookers padrão carregados")
	} else {
		logrus.WithField("order_bookers", len(existing)).Info("Order bookers já cadastrados, seed ignorado")
	}

	for _, setting := range domain.DefaultSettings() {
		current, err := settingRepo.Get(c.Context, setting.Key)
		if err != nil {
			return errors.Wrapf(err, "erro ao buscar configuração %s", setting.Key)
		}
		if current != nil {
			continue
		}

		if err := settingRepo.Upsert(c.Context, setting); err != nil {
			return errors.Wrapf(err, "erro ao gravar configuração %s", setting.Key)
		}
		logrus.WithField("key", setting.Key).Info("Configuração padrão gravada")
	}

	return nil
}

func runReseed(c *cli.Context) error {
	defaults := domain.DefaultOrderBookers()

	if err := repository.NewOrderBookerRepository(connection(c)).ReplaceAll(c.Context, defaults); err != nil {
		return errors.Wrap(err, "erro ao recarregar order bookers")
	}

	logrus.WithField("order_bookers", len(defaults)).Warn("Order bookers substituídos pela lista padrão")
	return nil
}

func runHashPassword(c *cli.Context) error {
	password := c.String("password")

	if password == "" {
		generated, err := authenticating.GenerateStrongPassword(c.Int("length"))
		if err != nil {
			return err
		}
		password = generated
		fmt.Fprintf(c.App.Writer, "ADMIN_PASSWORD=%s\n", password)
	} else if err := authenticating.ValidatePasswordStrength(password); err != nil {
		return err
	}

	hash, err := authenticating.HashPassword(password)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "ADMIN_PASSWORD_HASH=%s\n", hash)
	return nil
}
