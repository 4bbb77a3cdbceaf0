package lesson

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// DemoEmail / DemoPassword sign in to the bundled practice account.
const (
	DemoEmail    = "ada@astrolearn.dev"
	DemoPassword = "supernova"
)

// SeedDemo loads the bundled astrophysics bank plus a demo student and
// two friends. It is a no-op when the store already has data.
func SeedDemo(ctx context.Context, s Seeder) error {
	empty, err := s.Empty(ctx)
	if err != nil {
		return fmt.Errorf("probe store: %w", err)
	}
	if !empty {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}
	now := time.Now().UTC().Format(time.RFC3339)

	students := []Student{
		{
			ID: "stu-ada", Name: "Ada Lovelace", Email: DemoEmail,
			PasswordHash: string(hash), Status: "active",
			Level: 3, XP: 240, NextLevelXPNeeded: 300, DaysStreak: 4,
			DateOfBirth: "1998-12-10", CreatedAt: now,
		},
		{
			ID: "stu-carl", Name: "Carl Sagan", Email: "carl@astrolearn.dev",
			PasswordHash: string(hash), Status: "active",
			Level: 5, XP: 480, NextLevelXPNeeded: 500, DaysStreak: 12,
			DateOfBirth: "1996-11-09", CreatedAt: now,
		},
		{
			ID: "stu-vera", Name: "Vera Rubin", Email: "vera@astrolearn.dev",
			PasswordHash: string(hash), Status: "active",
			Level: 2, XP: 110, NextLevelXPNeeded: 200, DaysStreak: 2,
			DateOfBirth: "1999-07-23", CreatedAt: now,
		},
		{
			ID: "stu-fritz", Name: "Fritz Zwicky", Email: "fritz@astrolearn.dev",
			PasswordHash: string(hash), Status: "active",
			Level: 4, XP: 390, NextLevelXPNeeded: 400, DaysStreak: 7,
			DateOfBirth: "1997-02-14", CreatedAt: now,
		},
	}
	for _, st := range students {
		if err := s.PutStudent(ctx, st); err != nil {
			return err
		}
	}
	if err := s.AddFriendship(ctx, "stu-ada", "stu-carl", "accepted"); err != nil {
		return err
	}
	if err := s.AddFriendship(ctx, "stu-vera", "stu-ada", "accepted"); err != nil {
		return err
	}
	if err := s.AddFriendship(ctx, "stu-fritz", "stu-ada", "pending"); err != nil {
		return err
	}

	subjects := []Subject{
		{ID: "subj-astro", Title: "Astrophysics", Description: "Stars, black holes and the violent universe", Icon: "telescope"},
		{ID: "subj-cosmo", Title: "Cosmology", Description: "The history and fate of the universe", Icon: "galaxy"},
	}
	for _, sub := range subjects {
		if err := s.PutSubject(ctx, sub); err != nil {
			return err
		}
	}

	lessons := []Lesson{
		{ID: "les-stars", SubjectID: "subj-astro", Title: "Stellar Evolution"},
		{ID: "les-bh", SubjectID: "subj-astro", Title: "Black Holes"},
		{ID: "les-solar", SubjectID: "subj-astro", Title: "The Solar System"},
		{ID: "les-bigbang", SubjectID: "subj-cosmo", Title: "The Big Bang"},
		{ID: "les-dark", SubjectID: "subj-cosmo", Title: "Dark Matter and Dark Energy"},
	}
	for _, l := range lessons {
		if err := s.PutLesson(ctx, l); err != nil {
			return err
		}
	}

	for _, q := range seedQuestions() {
		if err := s.PutQuestion(ctx, q); err != nil {
			return err
		}
	}
	return nil
}

func seedQuestions() []Question {
	mk := func(lessonID, id, text string, opts [4]string, correct int) Question {
		q := Question{ID: id, LessonID: lessonID, Text: text}
		for i, o := range opts {
			oid := fmt.Sprintf("%s-%c", id, 'a'+i)
			q.Options = append(q.Options, Option{ID: oid, Text: o})
			if i == correct {
				q.CorrectOptionID = oid
			}
		}
		return q
	}

	return []Question{
		mk("les-stars", "q-st1", "What force balances radiation pressure in a main-sequence star?",
			[4]string{"Magnetism", "Gravity", "Friction", "Centrifugal force"}, 1),
		mk("les-stars", "q-st2", "What does a star like the Sun become at the end of its life?",
			[4]string{"A white dwarf", "A black hole", "A pulsar", "A quasar"}, 0),
		mk("les-stars", "q-st3", "Which element is fused first in a star's core?",
			[4]string{"Carbon", "Helium", "Hydrogen", "Iron"}, 2),
		mk("les-stars", "q-st4", "A supernova marks the death of what kind of star?",
			[4]string{"A red dwarf", "A massive star", "A brown dwarf", "A Sun-like star"}, 1),
		mk("les-stars", "q-st5", "What is a neutron star primarily made of?",
			[4]string{"Degenerate neutrons", "Plasma", "Iron crystals", "Quark soup"}, 0),
		mk("les-stars", "q-st6", "The color of a star most directly indicates its what?",
			[4]string{"Age", "Distance", "Surface temperature", "Size"}, 2),

		mk("les-bh", "q-bh1", "What is the boundary around a black hole called?",
			[4]string{"The photon ring", "The event horizon", "The ergosphere", "The singularity"}, 1),
		mk("les-bh", "q-bh2", "What happens to time near a black hole, as seen from far away?",
			[4]string{"It speeds up", "It stops entirely", "It slows down", "Nothing changes"}, 2),
		mk("les-bh", "q-bh3", "Stellar black holes form from what?",
			[4]string{"Collapsing massive stars", "Colliding planets", "Cooling gas clouds", "Merging white dwarfs"}, 0),
		mk("les-bh", "q-bh4", "What sits at the center of most large galaxies?",
			[4]string{"A neutron star cluster", "A white hole", "A dark matter knot", "A supermassive black hole"}, 3),
		mk("les-bh", "q-bh5", "Radiation predicted to slowly evaporate black holes is named after whom?",
			[4]string{"Einstein", "Hawking", "Penrose", "Chandrasekhar"}, 1),

		mk("les-solar", "q-so1", "Which planet is the largest in the Solar System?",
			[4]string{"Saturn", "Neptune", "Jupiter", "Earth"}, 2),
		mk("les-solar", "q-so2", "What is the asteroid belt located between?",
			[4]string{"Mars and Jupiter", "Earth and Mars", "Jupiter and Saturn", "Venus and Earth"}, 0),
		mk("les-solar", "q-so3", "What gives Mars its red color?",
			[4]string{"Methane haze", "Sulfur clouds", "Iron oxide dust", "Volcanic glass"}, 2),
		mk("les-solar", "q-so4", "Comets develop tails because of what?",
			[4]string{"Gravity of planets", "Solar radiation and wind", "Magnetic fields", "Internal heat"}, 1),
		mk("les-solar", "q-so5", "Which body has the thickest atmosphere of any moon?",
			[4]string{"Europa", "Ganymede", "Io", "Titan"}, 3),

		mk("les-bigbang", "q-bb1", "Roughly how old is the universe?",
			[4]string{"13.8 billion years", "4.5 billion years", "100 billion years", "1 million years"}, 0),
		mk("les-bigbang", "q-bb2", "What is the cosmic microwave background?",
			[4]string{"Starlight from the first galaxies", "Relic radiation from the early universe", "Emission from black holes", "Reflected sunlight"}, 1),
		mk("les-bigbang", "q-bb3", "The observed redshift of distant galaxies shows that the universe is what?",
			[4]string{"Shrinking", "Static", "Expanding", "Rotating"}, 2),
		mk("les-bigbang", "q-bb4", "Which light elements formed in the first minutes after the Big Bang?",
			[4]string{"Carbon and oxygen", "Iron and nickel", "Gold and silver", "Hydrogen and helium"}, 3),
		mk("les-bigbang", "q-bb5", "Who first observed that galaxies recede faster the farther they are?",
			[4]string{"Edwin Hubble", "Galileo Galilei", "Johannes Kepler", "Henrietta Leavitt"}, 0),

		mk("les-dark", "q-dk1", "Dark matter was first inferred from what observation?",
			[4]string{"Solar eclipses", "Galaxy rotation curves", "Supernova colors", "Planetary orbits"}, 1),
		mk("les-dark", "q-dk2", "About what fraction of the universe's energy content is dark energy?",
			[4]string{"5%", "27%", "68%", "95%"}, 2),
		mk("les-dark", "q-dk3", "Dark energy is invoked to explain what?",
			[4]string{"The accelerating expansion of the universe", "The brightness of quasars", "The spin of pulsars", "The mass of neutrinos"}, 0),
		mk("les-dark", "q-dk4", "Why is dark matter called dark?",
			[4]string{"It absorbs all starlight", "It only exists in voids", "It is made of black holes", "It does not emit or absorb light"}, 3),
		mk("les-dark", "q-dk5", "Gravitational lensing lets astronomers map what?",
			[4]string{"Stellar winds", "The distribution of mass, including dark matter", "Planetary magnetic fields", "Cosmic ray sources"}, 1),
	}
}
