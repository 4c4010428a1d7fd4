package comparison

import (
	"reflect"
	"testing"
)

func items(specs ...string) []Item {
	cats := map[string]Category{
		IDPain:          CategoryPain,
		IDNGRCS:         CategoryNGRCS,
		"symptom_ache":  CategoryOtherSymptoms,
		"activity_walk": CategoryFunctionalActivity,
		IDWBStatus:      CategoryWBStatus,
		IDAROM:          CategoryAROM,
		IDMusclePower:   CategoryMusclePower,
		"mystery":       Category("mystery"),
	}
	out := make([]Item, len(specs))
	for i, id := range specs {
		out[i] = Item{ID: id, Category: cats[id]}
	}
	return out
}

func TestDefaultOrder(t *testing.T) {
	got := IDs(DefaultOrder(items("mystery", IDMusclePower, IDPain, IDAROM, "symptom_ache")))
	want := []string{IDPain, "symptom_ache", IDAROM, IDMusclePower, "mystery"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DefaultOrder = %v, want %v", got, want)
	}
}

func TestMergeOrder(t *testing.T) {
	tests := []struct {
		name  string
		prev  []string
		items []Item
		want  []string
	}{
		{
			name:  "empty previous order gives default",
			items: items(IDAROM, IDPain),
			want:  []string{IDPain, IDAROM},
		},
		{
			name:  "user order is kept",
			prev:  []string{IDAROM, IDPain},
			items: items(IDPain, IDAROM),
			want:  []string{IDAROM, IDPain},
		},
		{
			name:  "removed ids drop out",
			prev:  []string{IDMusclePower, IDPain, IDAROM},
			items: items(IDPain, IDMusclePower),
			want:  []string{IDMusclePower, IDPain},
		},
		{
			name:  "new id goes before first higher rank",
			prev:  []string{IDPain, IDAROM, IDMusclePower},
			items: items(IDPain, IDWBStatus, IDAROM, IDMusclePower),
			want:  []string{IDPain, IDWBStatus, IDAROM, IDMusclePower},
		},
		{
			name:  "new id respects a user-moved item",
			prev:  []string{IDMusclePower, IDPain, IDAROM},
			items: items(IDPain, "symptom_ache", IDAROM, IDMusclePower),
			want:  []string{"symptom_ache", IDMusclePower, IDPain, IDAROM},
		},
		{
			name:  "new lowest rank appended",
			prev:  []string{IDPain, IDAROM},
			items: items(IDPain, IDAROM, "mystery"),
			want:  []string{IDPain, IDAROM, "mystery"},
		},
		{
			name:  "several new ids keep default order",
			prev:  []string{IDPain},
			items: items(IDPain, IDMusclePower, "activity_walk", IDNGRCS),
			want:  []string{IDPain, IDNGRCS, "activity_walk", IDMusclePower},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MergeOrder(tt.prev, tt.items); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("MergeOrder = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMergeOrder_Idempotent(t *testing.T) {
	it := items(IDPain, IDWBStatus, IDAROM)
	first := MergeOrder([]string{IDAROM}, it)
	if again := MergeOrder(first, it); !reflect.DeepEqual(first, again) {
		t.Errorf("MergeOrder not idempotent: %v then %v", first, again)
	}
}

func TestApply(t *testing.T) {
	it := items(IDPain, IDAROM, IDMusclePower)
	got := IDs(Apply([]string{IDMusclePower, "gone", IDPain}, it))
	if !reflect.DeepEqual(got, []string{IDMusclePower, IDPain}) {
		t.Errorf("Apply = %v", got)
	}
}
