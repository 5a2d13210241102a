package item

var breedNames = []string{
	"Labrador Retriever",
	"German Shepherd",
	"Golden Retriever",
	"French Bulldog",
	"Bulldog",
	"Poodle",
	"Beagle",
	"Rottweiler",
	"German Shorthaired Pointer",
	"Dachshund",
	"Pembroke Welsh Corgi",
	"Australian Shepherd",
	"Yorkshire Terrier",
	"Boxer",
	"Great Dane",
	"Siberian Husky",
	"Cavalier King Charles Spaniel",
	"Doberman Pinscher",
	"Miniature Schnauzer",
	"Shih Tzu",
	"Boston Terrier",
	"Bernese Mountain Dog",
	"Pomeranian",
	"Havanese",
	"Shetland Sheepdog",
	"Brittany",
	"English Springer Spaniel",
	"Cocker Spaniel",
	"Border Collie",
	"Chihuahua",
	"Labradoodle",
}

// Breeds returns the built-in catalog used when no item file is configured.
// Each call returns a fresh slice.
func Breeds() []Item {
	return FromNames(breedNames)
}
