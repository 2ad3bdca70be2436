package dashboard_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"campusevents/src-client/dashboard"
	"campusevents/src-client/model"
)

type fakeSource struct {
	calls atomic.Int32
	err   error
}

func (f *fakeSource) ListEvents(ctx context.Context) ([]model.Event, error) {
	f.calls.Add(1)
	return []model.Event{{ID: 1}, {ID: 2}}, f.err
}

func (f *fakeSource) AdminStats(ctx context.Context) (*model.AdminStats, error) {
	f.calls.Add(1)
	return &model.AdminStats{PendingRequests: 3}, nil
}

func (f *fakeSource) AdminNotifications(ctx context.Context) ([]model.Notification, error) {
	f.calls.Add(1)
	return []model.Notification{{ID: 9, Type: model.NotificationTypeAlert}}, nil
}

func (f *fakeSource) PendingUsers(ctx context.Context) ([]model.User, error) {
	f.calls.Add(1)
	return []model.User{{ID: 5}}, nil
}

func (f *fakeSource) MyRegistrations(ctx context.Context) ([]model.Registration, error) {
	f.calls.Add(1)
	return []model.Registration{{ID: 7, EventID: 1}}, nil
}

func (f *fakeSource) JudgeEvents(ctx context.Context) ([]model.Event, error) {
	f.calls.Add(1)
	return []model.Event{{ID: 3}}, nil
}

func (f *fakeSource) RecruiterEvents(ctx context.Context) ([]model.Event, error) {
	f.calls.Add(1)
	return []model.Event{{ID: 4}}, nil
}

func TestLoadPerRole(t *testing.T) {
	ctx := context.Background()
	for _, role := range model.Roles {
		t.Run(string(role), func(t *testing.T) {
			src := &fakeSource{}
			d, err := dashboard.Load(ctx, src, role)
			if err != nil {
				t.Fatal(err)
			}
			if d.Role() != role {
				t.Errorf("variant role = %q", d.Role())
			}

			switch v := d.(type) {
			case *dashboard.Admin:
				if v.Stats.PendingRequests != 3 || len(v.Notifications) != 1 || len(v.PendingUsers) != 1 || len(v.Events) != 2 {
					t.Errorf("admin dashboard incomplete: %+v", v)
				}
			case *dashboard.Student:
				if len(v.Events) != 2 || len(v.Registrations) != 1 {
					t.Errorf("student dashboard incomplete: %+v", v)
				}
			case *dashboard.Judge:
				if len(v.AssignedEvents) != 1 {
					t.Errorf("judge dashboard incomplete: %+v", v)
				}
			case *dashboard.Recruiter:
				if len(v.SponsoredEvents) != 1 {
					t.Errorf("recruiter dashboard incomplete: %+v", v)
				}
			case *dashboard.Faculty:
				if len(v.Events) != 2 {
					t.Errorf("faculty dashboard incomplete: %+v", v)
				}
			default:
				t.Errorf("unexpected variant %T", d)
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	ctx := context.Background()
	if _, err := dashboard.Load(ctx, &fakeSource{}, model.Role("guest")); err == nil {
		t.Error("expected an error for an unknown role")
	}

	boom := errors.New("boom")
	if _, err := dashboard.Load(ctx, &fakeSource{err: boom}, model.RoleAdmin); !errors.Is(err, boom) {
		t.Errorf("expected the source error, got %v", err)
	}
}

func TestCapabilities(t *testing.T) {
	if !dashboard.CapabilitiesOf(model.RoleAdmin).ManageUsers {
		t.Error("admins manage users")
	}
	if dashboard.CapabilitiesOf(model.RoleFaculty).ManageUsers {
		t.Error("faculty don't manage users")
	}
	if !dashboard.CapabilitiesOf(model.RoleFaculty).ManageEvents {
		t.Error("faculty manage events")
	}
	if dashboard.CapabilitiesOf(model.RoleStudent).ManageEvents {
		t.Error("students don't manage events")
	}
	if (dashboard.CapabilitiesOf(model.Role("guest")) != dashboard.Capabilities{}) {
		t.Error("unknown roles get nothing")
	}
}
