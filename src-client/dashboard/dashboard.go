// Package dashboard builds the landing screen of each role. A Dashboard is
// one of five variants; For picks the variant and Load fills it.
package dashboard

import (
	"context"
	"fmt"

	"campusevents/src-client/model"

	"golang.org/x/sync/errgroup"
)

type Dashboard interface {
	Role() model.Role
	// Load fetches everything the variant shows, concurrently.
	Load(ctx context.Context, src Source) error
}

// Source is the subset of the API client the dashboards read from.
type Source interface {
	ListEvents(ctx context.Context) ([]model.Event, error)
	AdminStats(ctx context.Context) (*model.AdminStats, error)
	AdminNotifications(ctx context.Context) ([]model.Notification, error)
	PendingUsers(ctx context.Context) ([]model.User, error)
	MyRegistrations(ctx context.Context) ([]model.Registration, error)
	JudgeEvents(ctx context.Context) ([]model.Event, error)
	RecruiterEvents(ctx context.Context) ([]model.Event, error)
}

type Admin struct {
	Stats         *model.AdminStats
	Notifications []model.Notification
	PendingUsers  []model.User
	Events        []model.Event
}

type Faculty struct {
	Events []model.Event
}

type Recruiter struct {
	// events the recruiter's company sponsors
	SponsoredEvents []model.Event
}

type Judge struct {
	AssignedEvents []model.Event
}

type Student struct {
	Events        []model.Event
	Registrations []model.Registration
}

func (*Admin) Role() model.Role     { return model.RoleAdmin }
func (*Faculty) Role() model.Role   { return model.RoleFaculty }
func (*Recruiter) Role() model.Role { return model.RoleRecruiter }
func (*Judge) Role() model.Role     { return model.RoleJudge }
func (*Student) Role() model.Role   { return model.RoleStudent }

func For(role model.Role) (Dashboard, error) {
	switch role {
	case model.RoleAdmin:
		return &Admin{}, nil
	case model.RoleFaculty:
		return &Faculty{}, nil
	case model.RoleRecruiter:
		return &Recruiter{}, nil
	case model.RoleJudge:
		return &Judge{}, nil
	case model.RoleStudent:
		return &Student{}, nil
	}
	return nil, fmt.Errorf("For: no dashboard for role %q", role)
}

func (d *Admin) Load(ctx context.Context, src Source) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		d.Stats, err = src.AdminStats(ctx)
		return err
	})
	g.Go(func() (err error) {
		d.Notifications, err = src.AdminNotifications(ctx)
		return err
	})
	g.Go(func() (err error) {
		d.PendingUsers, err = src.PendingUsers(ctx)
		return err
	})
	g.Go(func() (err error) {
		d.Events, err = src.ListEvents(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("(*Admin).Load: %w", err)
	}
	return nil
}

func (d *Faculty) Load(ctx context.Context, src Source) (err error) {
	if d.Events, err = src.ListEvents(ctx); err != nil {
		return fmt.Errorf("(*Faculty).Load: %w", err)
	}
	return nil
}

func (d *Recruiter) Load(ctx context.Context, src Source) (err error) {
	if d.SponsoredEvents, err = src.RecruiterEvents(ctx); err != nil {
		return fmt.Errorf("(*Recruiter).Load: %w", err)
	}
	return nil
}

func (d *Judge) Load(ctx context.Context, src Source) (err error) {
	if d.AssignedEvents, err = src.JudgeEvents(ctx); err != nil {
		return fmt.Errorf("(*Judge).Load: %w", err)
	}
	return nil
}

func (d *Student) Load(ctx context.Context, src Source) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		d.Events, err = src.ListEvents(ctx)
		return err
	})
	g.Go(func() (err error) {
		d.Registrations, err = src.MyRegistrations(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("(*Student).Load: %w", err)
	}
	return nil
}

// Load picks the variant for role and fills it.
func Load(ctx context.Context, src Source, role model.Role) (Dashboard, error) {
	d, err := For(role)
	if err != nil {
		return nil, err
	}
	if err := d.Load(ctx, src); err != nil {
		return nil, err
	}
	return d, nil
}
