package taxa_test

import (
	"testing"

	"github.com/mibig-secmet/mibigtaxa/pkg/errcode"
	"github.com/mibig-secmet/mibigtaxa/pkg/taxa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bioClassRecords models several small branches of the taxonomy with
// the ranks the classification rules inspect.
func bioClassRecords() map[int]taxa.Record {
	return map[int]taxa.Record{
		1: {TaxonID: 1, ParentID: 1, Name: "root", Rank: "no rank"},

		2:    {TaxonID: 2, ParentID: 1, Name: "Bacteria", Rank: "superkingdom"},
		1883: {TaxonID: 1883, ParentID: 2, Name: "Streptomyces", Rank: "genus"},

		2157: {TaxonID: 2157, ParentID: 1, Name: "Archaea", Rank: "superkingdom"},
		2287: {TaxonID: 2287, ParentID: 2157, Name: "Sulfolobus", Rank: "genus"},

		2759: {TaxonID: 2759, ParentID: 1, Name: "Eukaryota", Rank: "superkingdom"},

		4751: {TaxonID: 4751, ParentID: 2759, Name: "Fungi", Rank: "kingdom"},
		5057: {TaxonID: 5057, ParentID: 4751, Name: "Aspergillus", Rank: "genus"},

		33090: {
			TaxonID: 33090, ParentID: 2759,
			Name: "Viridiplantae", Rank: "kingdom",
		},
		3702: {
			TaxonID: 3702, ParentID: 33090,
			Name: "Arabidopsis thaliana", Rank: "species",
		},

		// Algal branches without a kingdom rank.
		2763: {TaxonID: 2763, ParentID: 2759, Name: "Rhodophyta", Rank: "phylum"},
		2788: {TaxonID: 2788, ParentID: 2763, Name: "Porphyra", Rank: "genus"},

		2864: {TaxonID: 2864, ParentID: 2759, Name: "Dinophyceae", Rank: "class"},
		2924: {
			TaxonID: 2924, ParentID: 2864,
			Name: "Alexandrium", Rank: "genus",
		},

		// Animal branch, which has no biosynthetic class.
		33208: {TaxonID: 33208, ParentID: 2759, Name: "Metazoa", Rank: "kingdom"},
		9606:  {TaxonID: 9606, ParentID: 33208, Name: "Homo sapiens", Rank: "species"},

		// Metagenome without any superkingdom.
		256318: {
			TaxonID: 256318, ParentID: 1,
			Name: "metagenome", Rank: "species",
		},

		// A branch using NCBI's post-2024 'domain' rank.
		3379134: {TaxonID: 3379134, ParentID: 1, Name: "Bacillati", Rank: "domain"},
		1386:    {TaxonID: 1386, ParentID: 3379134, Name: "Bacillus", Rank: "genus"},
	}
}

func TestBioClassByID(t *testing.T) {
	ids := make([]int, 0, len(bioClassRecords()))
	for id := range bioClassRecords() {
		ids = append(ids, id)
	}
	cache, err := taxa.Assemble(bioClassRecords(), nil, ids)
	require.NoError(t, err)

	tests := []struct {
		msg    string
		id     int
		class  string
		hasErr bool
	}{
		{msg: "bacteria", id: 1883, class: taxa.BioClassBacteria},
		{msg: "archaea", id: 2287, class: taxa.BioClassBacteria},
		{msg: "fungi", id: 5057, class: taxa.BioClassFungi},
		{msg: "plants", id: 3702, class: taxa.BioClassPlants},
		{msg: "red algae", id: 2788, class: taxa.BioClassPlants},
		{msg: "dinoflagellates", id: 2924, class: taxa.BioClassPlants},
		{msg: "metagenome", id: 256318, class: taxa.BioClassBacteria},
		{msg: "domain rank", id: 1386, class: taxa.BioClassBacteria},
		{msg: "animals", id: 9606, hasErr: true},
	}

	for _, v := range tests {
		class, err := cache.BioClassByID(v.id, false)
		if v.hasErr {
			require.Error(t, err, v.msg)
			assert.Equal(t,
				errcode.InvalidBioClassError, errCode(t, err), v.msg)
			continue
		}
		require.NoError(t, err, v.msg)
		assert.Equal(t, v.class, class, v.msg)
	}
}

func TestBioClassUnknownID(t *testing.T) {
	cache, err := taxa.Assemble(homoRecords(), nil, []int{9606})
	require.NoError(t, err)

	_, err = cache.BioClassByID(42, false)
	require.Error(t, err)
	assert.Equal(t, errcode.UnknownTaxonIDError, errCode(t, err))
}
