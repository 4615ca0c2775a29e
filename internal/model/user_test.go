package model

import "testing"

func TestPermissionsForRole(t *testing.T) {
	cases := []struct {
		role    string
		granted []string
		denied  []string
	}{
		{
			role:    "admin",
			granted: []string{"viewProfile", "viewReports", "createReports", "manageUsers", "manageGuards", "processRequests"},
		},
		{
			role:    "support",
			granted: []string{"viewReports", "createReports", "manageClients", "viewRequests"},
			denied:  []string{"manageUsers"},
		},
		{
			role:    "client",
			granted: []string{"viewProfile", "editProfile", "viewReports"},
			denied:  []string{"createReports", "manageUsers", "manageGuards", "processRequests"},
		},
		{
			role:    "unknown",
			granted: []string{"viewProfile", "editProfile"},
			denied:  []string{"viewReports", "manageUsers"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.role, func(t *testing.T) {
			perms := PermissionsForRole(tc.role)
			for _, p := range tc.granted {
				if !perms[p] {
					t.Errorf("%s should be granted for %s", p, tc.role)
				}
			}
			for _, p := range tc.denied {
				if perms[p] {
					t.Errorf("%s should be denied for %s", p, tc.role)
				}
			}
		})
	}
}
