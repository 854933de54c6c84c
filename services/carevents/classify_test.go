package carevents

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPartition(t *testing.T) {
	carShow := RawEventRecord{"id": "1", "name": "Classic Car Show"}
	dinnerCruise := RawEventRecord{"id": "2", "name": "Sunset Dinner Cruise"}
	cruiseNight := RawEventRecord{"id": "3", "name": "Cruise Night Downtown"}
	summaryOnly := RawEventRecord{"id": "4", "name": "Sunday Gathering", "summary": "bring your mustang"}

	white, grey := Partition([]RawEventRecord{
		carShow, dinnerCruise, cruiseNight, summaryOnly, nil,
	})

	wantWhite := []RawEventRecord{carShow, summaryOnly}
	wantGrey := []RawEventRecord{cruiseNight}

	if diff := cmp.Diff(wantWhite, white); diff != "" {
		t.Fatalf("white mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantGrey, grey); diff != "" {
		t.Fatalf("grey mismatch (-want +got):\n%s", diff)
	}
}

func TestScores(t *testing.T) {
	testCases := []struct {
		text  string
		white int
		black int
	}{
		{text: "", white: 0, black: 0},
		{text: "a mustang and a speedway full of hot rods", white: 4, black: 0},
		{text: "boat ride with beer and wine", white: 0, black: 3},
		{text: "MUSTANG", white: 1, black: 0},
	}

	for _, tc := range testCases {
		if got := WhiteScore(tc.text); got != tc.white {
			t.Errorf("WhiteScore(%q) = %d, want %d", tc.text, got, tc.white)
		}
		if got := BlackScore(tc.text); got != tc.black {
			t.Errorf("BlackScore(%q) = %d, want %d", tc.text, got, tc.black)
		}
	}
}

func TestPromoteGrey(t *testing.T) {
	testCases := []struct {
		name        string
		description string
		threshold   int
		want        bool
	}{
		{
			name:        "decisively car related",
			description: "a mustang rally at the speedway with supercar demos",
			threshold:   3,
			want:        true,
		},
		{
			name:        "not enough evidence",
			description: "come see a mustang",
			threshold:   3,
			want:        false,
		},
		{
			name:        "black terms outweigh",
			description: "truck themed boat ride: beer, wine, drinks, fishing and a yacht",
			threshold:   1,
			want:        false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := PromoteGrey(tc.description, tc.threshold); got != tc.want {
				t.Fatalf("PromoteGrey(%q, %d) = %v, want %v", tc.description, tc.threshold, got, tc.want)
			}
		})
	}
}
