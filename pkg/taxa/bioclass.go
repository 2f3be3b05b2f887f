package taxa

// Biosynthetic gene cluster classes used by antiSMASH. Every cached
// taxon maps to one of them or fails with InvalidBioClass.
const (
	BioClassBacteria = "bacteria"
	BioClassFungi    = "fungi"
	BioClassPlants   = "plants"
)

// BioClassByID maps a taxon to its antiSMASH biosynthetic class by
// inspecting the ranks of its ancestors. The rules mirror the MIBiG
// curation pipeline:
//
//   - superkingdom Archaea or Bacteria -> bacteria
//   - superkingdom Eukaryota, kingdom Fungi -> fungi
//   - superkingdom Eukaryota, kingdom Viridiplantae -> plants
//   - a few algal phyla and classes -> plants
//   - anything without a superkingdom -> bacteria (metagenomes are
//     usually bacterial even when NCBI leaves the superkingdom empty)
func (c *Cache) BioClassByID(id int, allowDeprecated bool) (string, error) {
	rec, err := c.resolve(id, allowDeprecated)
	if err != nil {
		return "", err
	}

	ranks := c.ranksOf(rec)

	// NCBI renamed the superkingdom rank to domain in 2024.
	superkingdom := ranks["superkingdom"]
	if superkingdom == "" {
		superkingdom = ranks["domain"]
	}

	switch superkingdom {
	case "Archaea", "Bacteria":
		return BioClassBacteria, nil
	case "Eukaryota":
		switch kingdom := ranks["kingdom"]; kingdom {
		case "Fungi":
			return BioClassFungi, nil
		case "Viridiplantae":
			return BioClassPlants, nil
		case "":
			switch phylum := ranks["phylum"]; phylum {
			case "Rhodophyta", "Bacillariophyta":
				return BioClassPlants, nil
			case "":
				if ranks["class"] == "Dinophyceae" {
					return BioClassPlants, nil
				}
				return "", invalidBioClassError(ranks["class"])
			default:
				return "", invalidBioClassError(phylum)
			}
		default:
			return "", invalidBioClassError(kingdom)
		}
	default:
		return BioClassBacteria, nil
	}
}

// ranksOf collects the names of rec and its ancestors keyed by rank.
// When a rank repeats along the lineage the entry closest to rec wins.
func (c *Cache) ranksOf(rec Record) map[string]string {
	ranks := make(map[string]string)
	cur := rec
	for {
		if _, ok := ranks[cur.Rank]; !ok && cur.Rank != "" {
			ranks[cur.Rank] = cur.Name
		}
		if cur.IsRoot() {
			return ranks
		}
		next, ok := c.Records[cur.ParentID]
		if !ok {
			// Only possible on a cache that skipped validation.
			return ranks
		}
		cur = next
	}
}
