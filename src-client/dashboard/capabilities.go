package dashboard

import "campusevents/src-client/model"

// Capabilities decides which actions the client offers. The backend
// enforces the real rules, this only hides what would be refused.
type Capabilities struct {
	ManageEvents        bool // create, edit, delete, reorder
	ExportRegistrations bool
	RequestFeedback     bool
	InviteGuests        bool
	ManageUsers         bool
	RegisterForEvents   bool
	EditProfile         bool
	ViewRoster          bool
	ViewStudents        bool
}

func CapabilitiesOf(role model.Role) Capabilities {
	switch role {
	case model.RoleAdmin:
		return Capabilities{
			ManageEvents:        true,
			ExportRegistrations: true,
			RequestFeedback:     true,
			InviteGuests:        true,
			ManageUsers:         true,
		}
	case model.RoleFaculty:
		return Capabilities{
			ManageEvents:        true,
			ExportRegistrations: true,
			RequestFeedback:     true,
			InviteGuests:        true,
		}
	case model.RoleStudent:
		return Capabilities{
			RegisterForEvents: true,
			EditProfile:       true,
		}
	case model.RoleJudge:
		return Capabilities{ViewRoster: true}
	case model.RoleRecruiter:
		return Capabilities{ViewStudents: true}
	}
	return Capabilities{}
}
